package pairing_test

import (
	"fmt"

	"github.com/katalvlaran/entwine/pairing"
)

// ExampleStore walks the full life of a pairing: link two portals, observe
// symmetry, tear the link down from one side, and watch a second teardown
// fail.
func ExampleStore() {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")

	_ = st.Pair(a, b)
	pa, _ := st.Partner(a)
	pb, _ := st.Partner(b)
	fmt.Println("A paired with B:", pa == b && pb == a)

	_ = st.Unpair(a)
	pa, _ = st.Partner(a)
	pb, _ = st.Partner(b)
	fmt.Println("both sides free:", pa.IsNone() && pb.IsNone())

	if err := st.Unpair(a); err != nil {
		fmt.Println("second unpair rejected")
	}

	// Output:
	// A paired with B: true
	// both sides free: true
	// second unpair rejected
}
