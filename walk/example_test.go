package walk_test

import (
	"fmt"

	"github.com/katalvlaran/entwine/tree"
	"github.com/katalvlaran/entwine/walk"
)

// ExampleDepthFirst prints a document fragment in pre-order, indenting by
// depth. Composites print their tag, leaves their payload.
//
//	paragraph
//	├── "hello " (leaf)
//	└── bold
//	    └── "world" (leaf)
func ExampleDepthFirst() {
	st := tree.New()
	paragraph, _ := st.NewSequence("paragraph")
	hello, _ := st.NewLeaf("hello ")
	bold, _ := st.NewSequence("bold")
	world, _ := st.NewLeaf("world")
	_ = st.Attach(paragraph, hello, 0)
	_ = st.Attach(paragraph, bold, 1)
	_ = st.Attach(bold, world, 0)

	res, _ := walk.DepthFirst(st, paragraph)
	for _, n := range res.Order {
		indent := ""
		for i := 0; i < res.Depth[n]; i++ {
			indent += "  "
		}
		if k, _ := st.Kind(n); k == tree.Leaf {
			p, _ := st.Payload(n)
			fmt.Printf("%s%q\n", indent, p)
			continue
		}
		tag, _ := st.Tag(n)
		fmt.Println(indent + tag)
	}

	// Output:
	// paragraph
	//   "hello "
	//   bold
	//     "world"
}

// ExampleBreadthFirst shows level-order coverage of the same fragment.
func ExampleBreadthFirst() {
	st := tree.New()
	paragraph, _ := st.NewSequence("paragraph")
	hello, _ := st.NewLeaf("hello ")
	bold, _ := st.NewSequence("bold")
	world, _ := st.NewLeaf("world")
	_ = st.Attach(paragraph, hello, 0)
	_ = st.Attach(paragraph, bold, 1)
	_ = st.Attach(bold, world, 0)

	res, _ := walk.BreadthFirst(st, paragraph)
	for _, n := range res.Order {
		fmt.Println(res.Depth[n])
	}

	// Output:
	// 0
	// 1
	// 1
	// 2
}
