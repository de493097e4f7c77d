/*
Builds a landscape block by block and feeds every frame to the headless
renderer. Tweak the animation by editing the controls file while it runs.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/landscape/engine"
	"github.com/spaghettifunk/landscape/engine/core"
	"github.com/spaghettifunk/landscape/engine/renderer"
	"github.com/spaghettifunk/landscape/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML application config")
	flag.Parse()

	cfg := engine.DefaultApplicationConfig()
	if *configPath != "" {
		var err error
		if cfg, err = engine.LoadApplicationConfig(*configPath); err != nil {
			core.LogFatal("failed to load config: %s", err)
		}
	}

	tb, err := testbed.NewLandscapeGame(cfg)
	if err != nil {
		core.LogFatal("%s", err)
	}

	e, err := engine.New(tb.Game, renderer.NewHeadlessBackend())
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = e.Shutdown()
	}()

	// run engine
	if err := e.Run(context.Background()); err != nil {
		core.LogFatal("%s", err)
	}
}
