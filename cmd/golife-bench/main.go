package main

import (
	"flag"
	"fmt"
	"time"

	"golife/internal/life"

	"github.com/cheggaaa/pb/v3"
)

func main() {
	side := flag.Int("side", 200, "board side length in cells")
	generations := flag.Int("generations", 1000, "generations to simulate")
	seed := flag.Int64("seed", 0, "board seed, 0 seeds from the clock")
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	world := life.New(*side)
	world.Reset(s)

	fmt.Printf("board %dx%d, seed %d, initial population %d\n",
		*side, *side, s, world.Population())

	bar := pb.StartNew(*generations)
	start := time.Now()
	for i := 0; i < *generations; i++ {
		world.Step()
		bar.Increment()
	}
	bar.Finish()

	elapsed := time.Since(start)
	fmt.Printf("%d generations in %v (%.1f gen/s), final population %d\n",
		*generations, elapsed.Round(time.Millisecond),
		float64(*generations)/elapsed.Seconds(), world.Population())
}
