//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/sortcycle/internal/config"
	"github.com/appengine-ltd/sortcycle/internal/shell"
	"github.com/appengine-ltd/sortcycle/internal/storage"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		headless    bool
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&headless, "headless", true, "run the text shell (always on in this build)")
	flag.Int64Var(&seed, "seed", 0, "fixed RNG seed for rounds (0 = random)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Sortcycle %s (%s) %s\n", version, commit, date)
		return
	}
	_ = headless

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kv, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := shell.New(kv, os.Stdin, os.Stdout)
	app.Seed = seed
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
