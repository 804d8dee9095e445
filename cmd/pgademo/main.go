// Command pgademo composes rigid motions from a YAML scenario and prints the
// resulting motor and transformed points.
//
// Usage:
//
//	pgademo run testdata/scenarios/camera.yaml --format yaml
//	pgademo version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pgademo:", err)
		os.Exit(1)
	}
}
