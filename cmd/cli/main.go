// llogcolor - Lustre debug log colorizer
//
// llogcolor colors every line of a Lustre debug log by the thread that wrote
// it, so interleaved threads can be followed on a terminal.
package main

import (
	"os"

	"github.com/llnl/llogcolor/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
