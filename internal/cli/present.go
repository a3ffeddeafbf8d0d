package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"deckhand/internal/eventbus"
	"deckhand/internal/report"
	"deckhand/internal/ui"
)

func (a *app) presentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "present [deck]",
		Short: "Present a deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.present(cmd.Context(), args)
		},
	}
}

// present runs the interactive display until the user quits
func (a *app) present(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()
	logEvents(bus)

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := a.loadDeck(bus, path)
	if err != nil {
		return err
	}

	session, store, err := a.openSession(ctx, cfg, bus)
	if err != nil {
		return err
	}
	defer closeStore(store)

	exporter := report.NewExporter(a.exportDir(cfg), bus)

	log.Printf("Creating UI model...")
	model, err := ui.NewModel(cfg, session, exporter, bus)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Failures raised outside the update loop reach the status bar
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if os.Getenv("DECKHAND_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stdout, "__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
