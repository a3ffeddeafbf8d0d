package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"deckhand/internal/eventbus"
	"deckhand/internal/report"
)

func (a *app) fieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Inspect or clear the saved field values",
	}
	cmd.AddCommand(a.fieldsListCommand(), a.fieldsClearCommand())
	return cmd
}

func (a *app) fieldsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved field values",
		Long: `List prints every value in the field store, including keys the current
deck no longer declares.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadDeck(nil, "")
			if err != nil {
				return err
			}
			_, store, err := a.openSession(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			defer closeStore(store)

			values, err := store.All(cmd.Context())
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(values))
			for key := range values {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				a.printf("%s = %q\n", key, values[key])
			}
			return nil
		},
	}
}

func (a *app) fieldsClearCommand() *cobra.Command {
	var clinicOnly bool

	cmd := &cobra.Command{
		Use:   "clear [key...]",
		Short: "Clear saved field values",
		Long: `Clear removes the named fields from the store. With no keys every field is
cleared; --clinic clears only the marketing clinic answers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bus := eventbus.New()
			defer bus.Close()
			logEvents(bus)

			cfg, err := a.loadDeck(bus, "")
			if err != nil {
				return err
			}
			session, store, err := a.openSession(cmd.Context(), cfg, bus)
			if err != nil {
				return err
			}
			defer closeStore(store)

			keys := args
			switch {
			case clinicOnly:
				keys = report.ClinicKeys()
			case len(keys) == 0:
				keys = session.Keys()
			default:
				for _, key := range keys {
					if _, ok := session.Field(key); !ok {
						return fmt.Errorf("unknown field: %s", key)
					}
				}
			}

			if err := session.Clear(cmd.Context(), keys...); err != nil {
				return err
			}
			a.printf("Cleared %d fields\n", len(keys))
			return nil
		},
	}
	cmd.Flags().BoolVar(&clinicOnly, "clinic", false, "clear only the clinic answers")
	return cmd
}
