// mkicon generates the app icon set from the shared icon package:
// icons/icon16.png, icons/icon48.png and icons/icon128.png, written
// relative to the working directory. The icons directory must already
// exist.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"inmark/internal/icon"
)

const outDir = "icons"

// sizes are the rendered icon dimensions, ascending.
var sizes = []int{16, 48, 128}

func main() {
	if err := writeAll(outDir, sizes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeAll renders every size into dir as icon<size>.png, overwriting
// existing files. It does not create dir and stops at the first
// failure, leaving earlier sizes on disk.
func writeAll(dir string, sizes []int) error {
	for _, size := range sizes {
		path := filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
		if err := icon.WriteFile(path, size); err != nil {
			return err
		}
	}
	return nil
}
