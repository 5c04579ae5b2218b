package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/usecase/extract"
)

func reportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "report",
		Short: "Inspect saved merge reports",
	}

	c.AddCommand(reportShowCmd())
	return c
}

func reportShowCmd() *cobra.Command {
	var file string
	var query string
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the latest merge report (or a named one)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")

			app, err := loadApp(root, false, false)
			if err != nil {
				return err
			}

			var report domain.MergeReport
			if file != "" {
				report, err = app.store.LoadReport(file)
			} else {
				report, err = app.store.LatestReport()
			}
			if err != nil {
				return err
			}

			if query != "" {
				val, err := extract.Query(report, query)
				if err != nil {
					return err
				}
				fmt.Println(val)
				return nil
			}

			return printReport(os.Stdout, report, "", format)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Report id or path (default: latest)")
	cmd.Flags().StringVar(&query, "query", "", "JSONPath expression to evaluate against the report (e.g. $.total_pages)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}
