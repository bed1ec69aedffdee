package route_test

import (
	"fmt"

	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/route"
	"github.com/katalvlaran/districts/seed"
)

// ExamplePath finds the cheap detour around an expensive direct edge.
func ExamplePath() {
	w := core.NewWorld(seed.New(7))
	for v := uint32(1); v <= 3; v++ {
		_ = w.AddNode(core.NodeID{Value: v, Coord: core.Coord{X: int32(v)}})
	}
	_ = w.Connect(core.Connection{From: 1, To: 3, Type: core.Bidirectional, TraversalCost: 0.5})
	_ = w.Connect(core.Connection{From: 1, To: 2, Type: core.Bidirectional, TraversalCost: 0.1})
	_ = w.Connect(core.Connection{From: 2, To: 3, Type: core.Bidirectional, TraversalCost: 0.1})

	path, cost, err := route.Path(w, 1, 3)
	fmt.Println(path, fmt.Sprintf("%.1f", cost), err)
	// Output:
	// [1 2 3] 0.2 <nil>
}
