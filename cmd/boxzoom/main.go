// Command boxzoom draws a selection box over an image and crops images with
// stored boxes.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/boxzoom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "boxzoom: %v\n", err)
		os.Exit(1)
	}
}
