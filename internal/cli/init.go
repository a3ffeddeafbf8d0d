package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deckhand/internal/config"
	"deckhand/internal/eventbus"
)

func (a *app) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in workshop deck to a file",
		Long: `Init writes the built-in workshop deck so it can be edited. The file is
TOML unless the path ends in .yaml or .yml. Without a path the deck is written
to ./.deckhand.toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileName
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			bus := eventbus.New()
			defer bus.Close()
			logEvents(bus)

			svc := config.NewService(path, bus)
			if err := svc.SaveToPath(config.DefaultConfig(), path); err != nil {
				return err
			}
			a.printf("Deck written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
