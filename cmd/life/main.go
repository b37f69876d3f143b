package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fblife/internal/app"
	"fblife/internal/core"
	"fblife/internal/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [width [height [alive_rate]]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	simCfg := life.FromArgs(flag.Args())
	if err := simCfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = core.TimeSeed(core.SystemClock{})
	}
	sim := life.New(simCfg, seed)

	var (
		code int
		err  error
	)
	switch cfg.Host {
	case app.HostTerminal:
		code, err = app.RunTerminal(sim, cfg)
	case app.HostWindow:
		code, err = app.RunWindow(sim, cfg)
	default:
		log.Fatalf("unknown host %q", cfg.Host)
	}
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}
