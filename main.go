// toolview CLI entry point
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/batalabs/toolview/internal/config"
	"github.com/batalabs/toolview/internal/display"
	"github.com/batalabs/toolview/internal/replay"
	"github.com/batalabs/toolview/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	transcriptFlag := flag.String("transcript", "", "Path to a JSON tool-call transcript (default: built-in demo)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("toolview %s\n", version)
		return
	}

	logger := config.NewLogger()
	defer logger.Close()

	events := replay.Demo()
	if *transcriptFlag != "" {
		loaded, err := replay.Load(*transcriptFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "toolview: %v\n", err)
			os.Exit(1)
		}
		events = loaded
	}

	registry := display.NewRegistry()
	logger.Printf("starting viewer: %d events", len(events))

	model := tui.NewModel(registry, events, logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Printf("program error: %v", err)
		fmt.Fprintf(os.Stderr, "toolview: %v\n", err)
		os.Exit(1)
	}
}
