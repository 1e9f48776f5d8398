package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvrank/builder"
)

// ExampleBuildGraph builds a directed star with letter IDs: every leaf links
// into the hub, which has no out-links of its own.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Star(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s\n", e.From, e.To)
	}
	fmt.Println("dangling:", g.Stats().DanglingCount)

	// Output:
	// B→Center
	// C→Center
	// D→Center
	// dangling: 1
}
