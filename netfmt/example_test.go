package netfmt_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvperiodic/netfmt"
	"github.com/katalvlaran/lvperiodic/periodicity"
)

func ExampleParse() {
	g, err := netfmt.Parse(strings.NewReader(`
node Cu 0
edge Cu Cu 1 0 0
edge Cu Cu 0 1 0
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := periodicity.Compute(g)
	fmt.Println(res.Label())
	_ = netfmt.Format(os.Stdout, g)
	// Output:
	// 2D
	// node Cu 0
	// edge Cu Cu 1 0 0
	// edge Cu Cu 0 1 0
}
