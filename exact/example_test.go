package exact_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/exact"
)

// ExampleStoerWagner finds the bridge between two triangles.
func ExampleStoerWagner() {
	g := core.MustGraph(6,
		core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2}, core.Edge{U: 0, V: 2},
		core.Edge{U: 3, V: 4}, core.Edge{U: 4, V: 5}, core.Edge{U: 3, V: 5},
		core.Edge{U: 2, V: 3},
	)
	cut, err := exact.StoerWagner(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cut.Value, cut.Side)
	// Output: 1 [0 1 2]
}
