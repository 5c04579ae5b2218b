package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/infra/logger"
	"github.com/blanc86/PDF-Merger/internal/usecase"
)

func scanCmd() *cobra.Command {
	var inputDir string
	var format string

	c := &cobra.Command{
		Use:   "scan",
		Short: "List candidate input PDFs with page counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			debug, _ := cmd.Flags().GetBool("debug")

			app, err := loadApp(root, false, false)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{Root: app.root, Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			uc := usecase.NewScanInputs(app.scanner, app.engine,
				usecase.WithScanLogger(logger.L()),
			)

			dir := app.inputDir(inputDir)
			docs, err := uc.Execute(dir)
			if err != nil {
				return err
			}

			return printScan(os.Stdout, dir, docs, format)
		},
	}

	c.Flags().StringVar(&inputDir, "input-dir", "", "Directory to scan (default: configured input dir)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printScan(w io.Writer, dir string, docs []domain.SourceDocument, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case "pretty", "":
		if len(docs) == 0 {
			fmt.Fprintf(w, "(no PDF files found in %s)\n", dir)
			return nil
		}
		fmt.Fprintf(w, "Input dir: %s\n\n", dir)
		for i, d := range docs {
			if d.Invalid {
				fmt.Fprintf(w, "%2d. %s  (unreadable)\n", i+1, d.Path)
				continue
			}
			fmt.Fprintf(w, "%2d. %s  %d page(s), %s\n", i+1, d.Path, d.Pages, formatSize(d.SizeBytes))
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
