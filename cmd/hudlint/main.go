// hudlint validates HUD layout documents without starting the game.
//
// Usage:
//
//	hudlint [-ids] layout.yaml [more.yaml ...]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/agesail/internal/hud"
)

func main() {
	listIDs := flag.Bool("ids", false, "print every node id in document order")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hudlint [-ids] layout.yaml ...")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		doc, err := hud.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}

		ids := doc.CollectIDs()
		fmt.Printf("%s: ok, %d nodes, %d ids\n", path, doc.Count(), len(ids))
		if *listIDs {
			for _, id := range ids {
				fmt.Printf("  %s\n", id)
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
