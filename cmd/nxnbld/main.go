// nxnbld - CLI for blindfolded memo of NxN cube scrambles.
package main

import (
	"github.com/SeamusWaldron/nxn_bld/internal/cli"
)

func main() {
	cli.Execute()
}
