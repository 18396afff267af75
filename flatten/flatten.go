package flatten

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/entwine/arena"
	"github.com/katalvlaran/entwine/tree"
)

var (
	// ErrStoreNil is returned when a nil *tree.Store is passed in.
	ErrStoreNil = errors.New("flatten: store is nil")

	// ErrBadShape indicates a Build input that matches none of the documented
	// plain-value shapes.
	ErrBadShape = fmt.Errorf("flatten: plain value has no recognizable shape: %w", arena.ErrInvalidArgument)
)

// Flatten renders the subtree rooted at root as a plain value: slices, maps
// and scalars only, one map per node, stable key names per kind. The result
// shares no state with the store.
// Complexity: O(n) over the subtree.
func Flatten(st *tree.Store, root tree.Node) (any, error) {
	if st == nil {
		return nil, ErrStoreNil
	}

	kind, err := st.Kind(root)
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	switch kind {
	case tree.Leaf:
		payload, perr := st.Payload(root)
		if perr != nil {
			return nil, fmt.Errorf("flatten: %w", perr)
		}
		if s, ok := payload.(string); ok {
			return map[string]any{"text": s}, nil
		}

		return map[string]any{"payload": payload}, nil

	case tree.Sequence:
		tag, terr := st.Tag(root)
		if terr != nil {
			return nil, fmt.Errorf("flatten: %w", terr)
		}
		children, cerr := st.Children(root)
		if cerr != nil {
			return nil, fmt.Errorf("flatten: %w", cerr)
		}
		kids := make([]any, 0, len(children))
		for _, c := range children {
			flat, ferr := Flatten(st, c)
			if ferr != nil {
				return nil, ferr
			}
			kids = append(kids, flat)
		}

		return map[string]any{"tag": tag, "children": kids}, nil

	case tree.Mapping:
		tag, terr := st.Tag(root)
		if terr != nil {
			return nil, fmt.Errorf("flatten: %w", terr)
		}
		keys, kerr := st.Keys(root)
		if kerr != nil {
			return nil, fmt.Errorf("flatten: %w", kerr)
		}
		kids := make(map[string]any, len(keys))
		for _, k := range keys {
			c, cerr := st.ChildByKey(root, k)
			if cerr != nil {
				return nil, fmt.Errorf("flatten: %w", cerr)
			}
			flat, ferr := Flatten(st, c)
			if ferr != nil {
				return nil, ferr
			}
			kids[k] = flat
		}

		return map[string]any{"tag": tag, "children": kids}, nil

	default:
		return nil, fmt.Errorf("flatten: unknown kind %v: %w", kind, arena.ErrInvalidArgument)
	}
}

// Build grows a detached subtree inside st from a plain value in the shapes
// documented on the package. Mapping children are attached in sorted key
// order, so rebuilding from the same plain value is deterministic.
// On failure nothing built so far is torn down; the returned node is NoNode.
// Complexity: O(n) over the plain value.
func Build(st *tree.Store, plain any) (tree.Node, error) {
	if st == nil {
		return tree.NoNode, ErrStoreNil
	}

	m, ok := plain.(map[string]any)
	if !ok {
		return tree.NoNode, ErrBadShape
	}

	// 1. Leaf shapes: exactly one recognized key.
	if text, has := m["text"]; has {
		s, isStr := text.(string)
		if !isStr || len(m) != 1 {
			return tree.NoNode, ErrBadShape
		}

		return st.NewLeaf(s)
	}
	if payload, has := m["payload"]; has {
		if len(m) != 1 || payload == nil {
			return tree.NoNode, ErrBadShape
		}

		return st.NewLeaf(payload)
	}

	// 2. Composite shapes: "tag" plus "children" of either collection kind.
	tag, hasTag := m["tag"].(string)
	children, hasKids := m["children"]
	if !hasTag || !hasKids || len(m) != 2 {
		return tree.NoNode, ErrBadShape
	}

	switch kids := children.(type) {
	case []any:
		root, err := st.NewSequence(tag)
		if err != nil {
			return tree.NoNode, fmt.Errorf("flatten: build: %w", err)
		}
		for _, k := range kids {
			child, cerr := Build(st, k)
			if cerr != nil {
				return tree.NoNode, cerr
			}
			if err = st.Append(root, child); err != nil {
				return tree.NoNode, fmt.Errorf("flatten: build: %w", err)
			}
		}

		return root, nil

	case map[string]any:
		root, err := st.NewMapping(tag)
		if err != nil {
			return tree.NoNode, fmt.Errorf("flatten: build: %w", err)
		}
		names := make([]string, 0, len(kids))
		for name := range kids {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			child, cerr := Build(st, kids[name])
			if cerr != nil {
				return tree.NoNode, cerr
			}
			if err = st.AttachKeyed(root, child, name); err != nil {
				return tree.NoNode, fmt.Errorf("flatten: build: %w", err)
			}
		}

		return root, nil

	default:
		return tree.NoNode, ErrBadShape
	}
}

// MarshalYAML flattens the subtree rooted at root and encodes it as YAML.
// Complexity: O(n) over the subtree.
func MarshalYAML(st *tree.Store, root tree.Node) ([]byte, error) {
	plain, err := Flatten(st, root)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("flatten: yaml encode: %w", err)
	}

	return out, nil
}
