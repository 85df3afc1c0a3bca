// Package main provides the grid2d CLI.
package main

import (
	"fmt"
	"os"

	"github.com/grid2d-go/grid2d/gridio"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("grid2d %s\n", version)
			return
		case "info":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: grid2d info <file.grd2>")
				os.Exit(2)
			}
			if err := info(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "grid2d: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("grid2d - fixed-size 2D grids with binary serialization")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version         Show version")
	fmt.Println("  info <file>     Show a .grd2 file header")
}

// info prints a .grd2 header without reading the data section.
func info(path string) error {
	r, err := gridio.NewReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	h := r.Header()
	fmt.Printf("file:       %s\n", path)
	fmt.Printf("format:     v%d (grid2d %s)\n", h.FormatVersion, h.Grid2DVersion)
	fmt.Printf("dtype:      %s\n", h.DType)
	fmt.Printf("dimensions: %d x %d (%d cells)\n", h.Width, h.Height, h.Width*h.Height)
	fmt.Printf("created:    %s\n", h.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("checksum:   sha256:%s\n", h.Checksum)
	for k, v := range h.Metadata {
		fmt.Printf("meta:       %s=%s\n", k, v)
	}
	return nil
}
