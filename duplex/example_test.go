package duplex_test

import (
	"fmt"

	"github.com/katalvlaran/entwine/duplex"
)

// ExampleStore_SetDeparture rewires a link from one departure endpoint to
// another; both endpoint sets and the link's own reference move together.
func ExampleStore_SetDeparture() {
	st := duplex.New()
	d1 := st.NewDeparture("D1")
	d2 := st.NewDeparture("D2")
	ar := st.NewArrival("Ar1")

	w, _ := st.NewLink(d1, ar)
	_ = st.SetDeparture(w, d2)

	l1, _ := st.Links(d1)
	l2, _ := st.Links(d2)
	dep, _ := st.Departure(w)
	tag, _ := st.Tag(dep)

	fmt.Println("D1 links:", len(l1))
	fmt.Println("D2 links:", len(l2))
	fmt.Println("departure of w:", tag)

	// Output:
	// D1 links: 0
	// D2 links: 1
	// departure of w: D2
}

// ExampleWithIdempotentReassign contrasts the two same-endpoint policies.
func ExampleWithIdempotentReassign() {
	strict := duplex.New()
	d := strict.NewDeparture("D")
	a := strict.NewArrival("Ar")
	w, _ := strict.NewLink(d, a)
	if err := strict.SetDeparture(w, d); err != nil {
		fmt.Println("strict store: rejected")
	}

	relaxed := duplex.New(duplex.WithIdempotentReassign())
	d = relaxed.NewDeparture("D")
	a = relaxed.NewArrival("Ar")
	w, _ = relaxed.NewLink(d, a)
	if err := relaxed.SetDeparture(w, d); err == nil {
		fmt.Println("relaxed store: no-op")
	}

	// Output:
	// strict store: rejected
	// relaxed store: no-op
}
