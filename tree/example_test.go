package tree_test

import (
	"fmt"

	"github.com/katalvlaran/entwine/tree"
)

// ExampleStore_Attach builds a small document fragment and walks one leaf's
// ancestor chain.
//
//	paragraph
//	├── "hello " (leaf)
//	└── bold
//	    └── "world" (leaf)
func ExampleStore_Attach() {
	st := tree.New()

	paragraph, _ := st.NewSequence("paragraph")
	hello, _ := st.NewLeaf("hello ")
	bold, _ := st.NewSequence("bold")
	world, _ := st.NewLeaf("world")

	_ = st.Attach(paragraph, hello, 0)
	_ = st.Attach(paragraph, bold, 1)
	_ = st.Attach(bold, world, 0)

	// Walk world's ancestors, nearest first.
	it, _ := st.Ancestors(world)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		tag, _ := st.Tag(a)
		fmt.Println(tag)
	}

	// Output:
	// bold
	// paragraph
}

// ExampleStore_AttachKeyed shows a name-keyed composite: keys iterate in
// insertion order, not lexical order.
func ExampleStore_AttachKeyed() {
	st := tree.New()

	dir, _ := st.NewMapping("directory")
	for _, name := range []string{"zebra.txt", "apple.txt"} {
		f, _ := st.NewLeaf("contents")
		_ = st.AttachKeyed(dir, f, name)
	}

	keys, _ := st.Keys(dir)
	for _, k := range keys {
		fmt.Println(k)
	}

	// Output:
	// zebra.txt
	// apple.txt
}

// ExampleStore_Detach demonstrates that re-homing a node is an explicit
// two-step dance: attaching an owned node fails until it is detached.
func ExampleStore_Detach() {
	st := tree.New()

	from, _ := st.NewSequence("from")
	to, _ := st.NewSequence("to")
	n, _ := st.NewLeaf("migrant")
	_ = st.Attach(from, n, 0)

	if err := st.Attach(to, n, 0); err != nil {
		fmt.Println("direct move rejected")
	}

	_ = st.Detach(n)
	if err := st.Attach(to, n, 0); err == nil {
		fmt.Println("moved after detach")
	}

	// Output:
	// direct move rejected
	// moved after detach
}
