package layout_test

import (
	"fmt"

	"github.com/graphscape/graphscape/pkg/layout"
)

func ExampleEngine_Run() {
	e := layout.NewEngine()

	p := layout.Defaults()
	p.Iterations = 0 // no simulation steps: positions pass through unchanged

	out, err := e.Run("nodes:0.5,0.25;2,3;edges:0-1", layout.NameForceDirected, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: nodes:0.5,0.25;2,3;edges:0-1
}

func ExampleEngine_RegisterDelegate() {
	e := layout.NewEngine()

	// A delegate receives the raw interchange text and owns the full
	// contract, codec included.
	_ = e.RegisterDelegate("mirror", func(graphText string) (string, error) {
		return graphText, nil
	})

	out, _ := e.Run("nodes:1,1;edges:", "mirror", layout.Params{})
	fmt.Println(out)
	// Output: nodes:1,1;edges:
}
