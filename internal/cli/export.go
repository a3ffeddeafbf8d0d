package cli

import (
	"github.com/spf13/cobra"

	"deckhand/internal/eventbus"
	"deckhand/internal/report"
)

func (a *app) exportCommand() *cobra.Command {
	var copyReport bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the saved clinic answers as a report",
		Long: `Export renders the marketing clinic answers held in the field store into
a paginated text report and writes the raw answers alongside it as YAML.`,
		Args: cobra.NoArgs,
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

			res, err := report.NewExporter(a.exportDir(cfg), bus).Export(session)
			if err != nil {
				return err
			}
			a.printf("Report saved: %s (%d pages)\n", res.ReportPath, res.Pages)
			a.printf("Answers saved: %s\n", res.AnswersPath)

			if copyReport {
				if err := report.CopyToClipboard(res); err != nil {
					return err
				}
				a.printf("Report copied to clipboard\n")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyReport, "copy", false, "also copy the report to the clipboard")
	return cmd
}
