// Command mazegen carves a maze and prints it as ASCII with its spanning-tree
// statistics.
package main

import (
	"flag"
	"fmt"
	"os"

	"mazeball/internal/maze"
	"mazeball/pkg/core"

	log "github.com/sirupsen/logrus"
)

func main() {
	rows := flag.Int("rows", 8, "maze rows")
	cols := flag.Int("cols", 12, "maze columns")
	seed := flag.Int64("seed", 0, "maze seed (0 picks one from the clock)")
	quiet := flag.Bool("quiet", false, "only print the statistics")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *rows <= 0 || *cols <= 0 {
		log.Fatalf("rows and cols must be positive, got %d and %d", *rows, *cols)
	}

	rng := core.NewRNG(core.ResolveSeed(*seed))
	g, startRow, startCol := maze.Generate(*rows, *cols, rng)
	if !*quiet {
		fmt.Print(g.String())
	}

	cells, edges := maze.Reachable(g, 0, 0)
	fmt.Printf("seed %d  %dx%d  start %d,%d  cells %d  passages %d  walls %d\n",
		rng.Seed(), *rows, *cols, startRow, startCol, cells, edges,
		g.ClosedVerticalGaps()+g.ClosedHorizontalGaps())
	if err := maze.Validate(g); err != nil {
		log.WithError(err).Fatal("maze is not a spanning tree")
	}
}
