package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/lvlref/disjointset"
)

// ExampleDisjointSet_Union counts connected components of an edge list.
func ExampleDisjointSet_Union() {
	d, _ := disjointset.New(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {3, 4}} {
		_, _ = d.Union(e[0], e[1])
	}
	fmt.Println(d.Sets())
	// Output:
	// 2
}
