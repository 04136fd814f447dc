package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"snake-u/internal/app"
	"snake-u/internal/platform"
	_ "snake-u/internal/platform/term"
	"snake-u/internal/snake"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	backend, open, err := selectBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if cfg.Backend == "window" {
			fmt.Fprintln(os.Stderr, "The window backend requires the ebiten build tag: go run -tags ebiten ./cmd/snake")
		}
		return 2
	}

	session := uuid.NewString()
	logger, closeLog, err := openLog(cfg.LogFile, backend == "term", session)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	rules := snake.DefaultConfig()
	rules.Seed = cfg.Seed
	if rules.Seed == 0 {
		rules.Seed = time.Now().UnixNano()
	}
	logger.Printf("starting backend=%s tps=%d seed=%d", backend, cfg.TPS, rules.Seed)

	plat, err := open(platform.Options{
		Title:  "snake-u",
		Width:  rules.Width,
		Height: rules.Height,
		Block:  rules.Block,
		Scale:  cfg.Scale,
		PollHz: cfg.PollHz,
		Logger: logger,
	})
	if err != nil {
		logger.Printf("open %s: %v", backend, err)
		return 1
	}
	defer func() {
		if err := plat.Close(); err != nil {
			logger.Printf("close %s: %v", backend, err)
		}
		logger.Print("quitting")
	}()

	game, err := app.New(cfg, rules, plat, logger)
	if err != nil {
		logger.Printf("setup: %v", err)
		return 1
	}

	err = game.Run()
	st := game.State()
	switch {
	case errors.Is(err, app.ErrInputDeviceFault):
		logger.Printf("stopped on input fault: %v", err)
		return 1
	case err != nil:
		logger.Printf("stopped: %v", err)
		return 1
	case st.GameOver:
		logger.Printf("game over, score %d (high score %d)", st.Score, st.HighScore)
	}
	return 0
}

// selectBackend resolves a -backend value. auto prefers the window backend
// when it was compiled in.
func selectBackend(name string) (string, platform.Opener, error) {
	if name == "auto" {
		name = "term"
		if _, ok := platform.Lookup("window"); ok {
			name = "window"
		}
	}
	open, ok := platform.Lookup(name)
	if !ok {
		return "", nil, fmt.Errorf("unknown backend %q (available: %s)", name, strings.Join(platform.Names(), ", "))
	}
	return name, open, nil
}

// openLog builds the diagnostic logger. The terminal backend owns stderr, so
// without -log its diagnostics are dropped.
func openLog(path string, quiet bool, session string) (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case quiet:
		out = io.Discard
	}
	prefix := fmt.Sprintf("snake %s ", session[:8])
	return log.New(out, prefix, log.LstdFlags|log.Lmsgprefix), closeFn, nil
}
