package main

import (
	"fmt"
	"os"

	"github.com/ln3d/ln/internal/ln"
)

func main() {
	ln.Debug = os.Getenv("DEBUG") != ""
	ln.AlwaysBVH = os.Getenv("ALWAYS_BVH") != ""
	ln.NeverBVH = os.Getenv("NEVER_BVH") != ""

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s scene.cbor out.svg\n", os.Args[0])
		os.Exit(1)
	}

	if err := ln.Run(os.Args[1], os.Args[2]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
