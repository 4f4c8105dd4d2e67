// Command linutil launches the linutil toolbox.
package main

import (
	"os"

	"github.com/nnyyxxxx/linutil/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
