package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"wa-tor/internal/sims/wator"
)

func main() {
	ticks := flag.Int("ticks", 100, "ticks to simulate")
	seed := flag.Int64("seed", 0, "seed for seeding the world (0 uses the configured seed)")
	interval := flag.Int("interval", 10, "ticks between census lines (0 disables)")
	opts := map[string]string{}
	flag.Func("opt", "simulation option as key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		opts[key] = value
		return nil
	})
	flag.Parse()

	cfg := wator.FromMap(opts)
	world, err := wator.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(*seed)

	fish, sharks := world.Census()
	fmt.Printf("Running %d ticks on a %dx%d grid (%d fish, %d sharks)\n",
		*ticks, cfg.Width, cfg.Height, fish, sharks)

	start := time.Now()
	history := wator.Run(world, *ticks)
	elapsed := time.Since(start)

	fishExtinct, sharkExtinct := -1, -1
	for i := range history.Frames {
		fish, sharks := history.Census(i)
		if fish == 0 && fishExtinct < 0 {
			fishExtinct = i
		}
		if sharks == 0 && sharkExtinct < 0 {
			sharkExtinct = i
		}
		if *interval > 0 && i%*interval == 0 {
			fmt.Printf("tick %4d  fish=%5d  sharks=%5d\n", i, fish, sharks)
		}
	}

	finalFish, finalSharks := world.Census()
	fmt.Printf("\nFinal census after %d ticks (elapsed %s): fish=%d sharks=%d\n",
		*ticks, elapsed.Round(time.Millisecond), finalFish, finalSharks)
	if fishExtinct >= 0 {
		fmt.Printf("Fish went extinct at tick %d\n", fishExtinct)
	}
	if sharkExtinct >= 0 {
		fmt.Printf("Sharks went extinct at tick %d\n", sharkExtinct)
	}
}
