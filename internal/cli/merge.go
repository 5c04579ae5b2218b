package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/infra/logger"
	"github.com/blanc86/PDF-Merger/internal/usecase"
)

func mergeCmd() *cobra.Command {
	var output string
	var inputDir string
	var format string
	var noReport bool
	var strict bool
	var relaxed bool

	c := &cobra.Command{
		Use:   "merge [flags] [input.pdf ...]",
		Short: "Merge PDF files into one, preserving input order",
		Long: `Merge concatenates the pages of the given PDF files, in the order
given, into a single output file. With --input-dir the inputs are
discovered by scanning a directory and sorting filenames
case-insensitively instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			debug, _ := cmd.Flags().GetBool("debug")

			if strict && relaxed {
				return fmt.Errorf("pass either --strict or --relaxed, not both")
			}

			app, err := loadApp(root, strict, relaxed)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{Root: app.root, Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			inputs := args
			if inputDir != "" {
				if len(args) > 0 {
					return fmt.Errorf("pass either input files or --input-dir, not both")
				}
				docs, err := app.scanner.Scan(app.inputDir(inputDir))
				if err != nil {
					return err
				}
				for _, d := range docs {
					inputs = append(inputs, d.Path)
				}
			}

			out := output
			if out == "" {
				out = app.defaultOutput(time.Now())
			}

			var store = app.store
			if noReport || !app.cfg.Reports.Enabled {
				store = nil
			}

			uc := usecase.NewMergeDocuments(app.engine,
				usecase.WithReportStore(store),
				usecase.WithLogger(logger.L()),
			)

			report, reportID, err := uc.Execute(cmd.Context(), domain.MergeJob{
				Inputs: inputs,
				Output: out,
			})
			if err != nil {
				return err
			}

			return printReport(os.Stdout, report, reportID, format)
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Destination path (default: timestamped file in the output dir)")
	c.Flags().StringVar(&inputDir, "input-dir", "", "Scan a directory for *.pdf inputs instead of listing them")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&noReport, "no-report", false, "Do not save a merge report")
	c.Flags().BoolVar(&strict, "strict", false, "Strict PDF validation")
	c.Flags().BoolVar(&relaxed, "relaxed", false, "Relaxed PDF validation, even if the config says strict")
	return c
}

func printReport(w io.Writer, report domain.MergeReport, reportID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report_id": reportID,
			"report":    report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, report, reportID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.MergeReport, reportID string) {
	fmt.Fprintf(w, "Output:      %s\n", report.Output)
	fmt.Fprintf(w, "Files:       %d\n", report.TotalFiles)
	fmt.Fprintf(w, "Pages:       %d\n", report.TotalPages)
	fmt.Fprintf(w, "Size:        %s\n", formatSize(report.OutputSizeBytes))
	fmt.Fprintf(w, "Duration:    %s\n", report.Duration())
	if reportID != "" {
		fmt.Fprintf(w, "Report ID:   %s\n", reportID)
	}
	fmt.Fprintln(w)

	for _, f := range report.Files {
		fmt.Fprintf(w, "- %s: %d page(s), %s\n", f.Path, f.Pages, formatSize(f.SizeBytes))
	}
}

func formatSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}
