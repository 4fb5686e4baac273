package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/googlesky/sentop/internal/collector"
	"github.com/googlesky/sentop/internal/platform"
	"github.com/googlesky/sentop/internal/ui"
)

func main() {
	interval := flag.Duration("interval", time.Second, "collection interval")
	window := flag.Int("window", 60, "samples kept per sensor")
	flag.Parse()

	// Redirect log output to a file so it doesn't interfere with TUI
	logFile, err := os.CreateTemp("", "sentop-*.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	p, err := platform.NewPlatform()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init platform: %v\n", err)
		os.Exit(1)
	}
	defer p.Close()

	// Smart detect the main outbound interface
	defaultIface := platform.DetectDefaultInterface()

	c := collector.New(p, *interval, *window)
	snapCh := c.Start()
	defer c.Stop()

	model := ui.New(snapCh)
	model.SetActiveInterface(defaultIface)
	model.SetController(c)

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
