package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"snake-u/internal/autopilot"
	"snake-u/internal/snake"
)

type gameResult struct {
	seed    int64
	score   int
	ticks   int
	length  int
	outcome snake.Outcome
}

func main() {
	games := flag.Int("games", 64, "number of games to play")
	maxTicks := flag.Int("ticks", 20000, "tick limit per game")
	baseSeed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	cfg := snake.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Sweep %s: %d games (%d workers, %d tick limit)\n", uuid.NewString(), *games, *workers, *maxTicks)

	jobs := make(chan int64)
	results := make(chan gameResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- playGame(cfg, seed, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *games; i++ {
			jobs <- *baseSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []gameResult
	outcomes := map[snake.Outcome]int{}
	totalScore := 0
	for res := range results {
		all = append(all, res)
		outcomes[res.outcome]++
		totalScore += res.score
	}
	if len(all) == 0 {
		fmt.Println("no games played")
		return
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 games (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d score=%d length=%d ticks=%d end=%s\n", i+1, res.seed, res.score, res.length, res.ticks, res.outcome)
	}

	worst := all[len(all)-1]
	fmt.Printf("\nMean score %.2f, worst seed=%d score=%d\n", float64(totalScore)/float64(len(all)), worst.seed, worst.score)
	fmt.Printf("Endings: wall=%d self=%d limit=%d\n",
		outcomes[snake.OutcomeWall], outcomes[snake.OutcomeSelf], outcomes[snake.OutcomeNone]+outcomes[snake.OutcomeAte])
}

func playGame(base snake.Config, seed int64, maxTicks int) gameResult {
	cfg := base
	cfg.Seed = seed
	st := snake.New(cfg)
	pilot := autopilot.New(cfg, seed)

	for st.Ticks() < maxTicks {
		st.Requested = pilot.Choose(st)
		if st.Tick() {
			break
		}
	}
	return gameResult{
		seed:    seed,
		score:   st.Score,
		ticks:   st.Ticks(),
		length:  st.Snake.Length,
		outcome: st.Last,
	}
}
