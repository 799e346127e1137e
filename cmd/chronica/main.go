package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/chronica/internal/cli"
	"github.com/alexanderramin/chronica/internal/config"
	"github.com/alexanderramin/chronica/internal/ics"
	"github.com/alexanderramin/chronica/internal/importer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	app := &cli.App{
		Config:    cfg,
		Now:       time.Now,
		LoadItems: importer.Load,
		LoadICS:   ics.ParseFile,
	}

	// Detect an interactive terminal for the view-mode picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
