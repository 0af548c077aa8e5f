package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/space-invaders/agent"
	"github.com/lixenwraith/space-invaders/audio"
	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/constants"
	"github.com/lixenwraith/space-invaders/engine"
	"github.com/lixenwraith/space-invaders/input"
	"github.com/lixenwraith/space-invaders/screenshot"
	"github.com/lixenwraith/space-invaders/status"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config (default space-invaders.toml if present)")
	speedFlag  = flag.String("speed", "", "Game speed: 1-3 or slow, medium, fast (empty asks on start)")
	modeFlag   = flag.String("mode", "", "Control mode: manual or agent (empty asks on start)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under logs/")
	seedFlag   = flag.Int64("seed", 0, "Seed for enemy fire selection (0 uses the clock)")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "space-invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Resolve(*speedFlag, *modeFlag); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPACE-INVADERS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()

	width, height := screen.Size()
	log.Printf("terminal %dx%d", width, height)
	if width < constants.MinWidth || height < constants.MinHeight {
		showMessage(screen, "Terminal too small",
			fmt.Sprintf("Current size: %dx%d", width, height),
			fmt.Sprintf("Required size: %dx%d", constants.MinWidth, constants.MinHeight))
		return fmt.Errorf("terminal too small: %dx%d, need at least %dx%d",
			width, height, constants.MinWidth, constants.MinHeight)
	}

	speed, mode, ok := selectSettings(screen, cfg.Speed, cfg.Mode)
	if !ok {
		return nil
	}
	if mode == config.ModeAgent && !cfg.AgentReady() {
		showMessage(screen, "AI agent unavailable",
			"Set OPENAI_API_KEY, or AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_APIKEY,",
			"or api_key in the [agent] section of the config file")
		return errors.New("agent mode requires API credentials")
	}
	log.Printf("starting: speed=%s mode=%s max_bullets=%d", speed, mode, cfg.Game.MaxBullets)

	opts := engine.Options{
		Width:      width,
		Height:     height,
		Speed:      speed,
		Mode:       mode,
		MaxBullets: cfg.Game.MaxBullets,
	}
	if *seedFlag != 0 {
		opts.Rand = rand.New(rand.NewSource(*seedFlag))
	}
	game := engine.NewGame(opts)

	metrics := status.NewRegistry()
	defer func() { log.Printf("session: %s", metrics.Summary()) }()

	var (
		source   input.Source
		keyboard *input.Keyboard
	)
	switch mode {
	case config.ModeAgent:
		decider := agent.NewChatDecider(cfg.Agent)
		src := agent.NewSource(decider, cfg.Agent.PollInterval(), cfg.Agent.Timeout())
		src.SetMetrics(metrics)
		source = src
		log.Printf("agent: model=%s azure=%v endpoint=%q", cfg.Agent.Model, cfg.Agent.Azure, cfg.Agent.Endpoint)
	default:
		keyboard = input.NewKeyboard(speed.KeyRepeat())
		source = keyboard
	}

	sounds := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	loop := engine.NewLoop(engine.LoopConfig{
		Screen:   screen,
		Game:     game,
		Source:   source,
		Keyboard: keyboard,
		Shots:    screenshot.NewService(cfg.Screenshot.Dir),
		Sink:     soundSink{sounds: sounds},
		Metrics:  metrics,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx)
}
