package collapse_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/districts/collapse"
	"github.com/katalvlaran/districts/core"
	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/seed"
)

// ExampleEngine_Tick collapses five districts on a line. Every node is forced
// to a tile once its iteration budget runs out, well inside 120 ticks.
func ExampleEngine_Tick() {
	w := core.NewWorld(seed.New(42))
	for i := 0; i < 5; i++ {
		_ = w.AddNode(core.NodeID{Value: uint32(i + 1), Coord: core.Coord{X: int32(i - 2)}})
	}

	e := collapse.NewEngine(collapse.WithLogger(logging.Discard()))
	var stats collapse.TickStats
	for tick := 0; tick < 120 && !w.AllTerminal(); tick++ {
		stats, _ = e.Tick(context.Background(), w, collapse.DefaultTickDelta)
	}

	fmt.Println("completed:", stats.Count(core.Completed))
	fmt.Println("active:", stats.Active())
	// Output:
	// completed: 5
	// active: 0
}
