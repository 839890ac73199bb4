/*
Package main implements the keyscout search server and CLI application.

keyscout provides exact, boolean, live-typing, and fuzzy-tolerant keyword
search plus multi-scope autocomplete over in-memory records. It can operate
as a MessagePack IPC server for integration with editors and UI widgets, or
as a CLI application for testing and debugging.

# Usage

Start the server over a JSON corpus:

	keyscout -data records.json

Run in CLI mode with debug logging:

	keyscout -data records.json -c -d

# Configuration

Runtime configuration is managed through a TOML file covering index,
fuzzy-matching, and server parameters:

	[index]
	search_type = "or"
	autocomplete_type = "context"
	maximum_search_results = 100

	[fuzzy]
	algorithm = "levenshtein"
	prefix_length = 2
	minimum_score = 0.3

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout; see pkg/server
for the message formats. Requests are processed synchronously with
microsecond timing information included in responses.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/keyscout/keyscout/internal/cli"
	"github.com/keyscout/keyscout/pkg/config"
	"github.com/keyscout/keyscout/pkg/corpus"
	"github.com/keyscout/keyscout/pkg/index"
	"github.com/keyscout/keyscout/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "keyscout"
	gh      = "https://github.com/keyscout/keyscout"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, corpus, and index together and hands control to the
// server or the CLI loop.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	dataPath := flag.String("data", "", "Corpus file to index (.json, .msgpack)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", activePath)

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	idx := index.New[string](opts)
	srv := server.New(idx, cfg.Server)

	if *dataPath != "" {
		records, err := corpus.Load(*dataPath)
		if err != nil {
			log.Fatalf("Failed to load corpus %s: %v", *dataPath, err)
		}
		for _, rec := range records {
			idx.Insert(rec.ID, rec)
			srv.Preload(rec.ID, rec.Strings)
		}
		log.Debugf("Indexed %d records, %d keywords", len(records), idx.Keywords())
	}

	if *cliMode {
		handler := cli.NewInputHandler(idx, cfg.Server.MinQuery, cfg.Server.MaxQuery, cfg.Server.MaxLimit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Printf("[ %s ] In-process keyword search & autocomplete", AppName)
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
