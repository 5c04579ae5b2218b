package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blanc86/PDF-Merger/internal/buildinfo"
	"github.com/blanc86/PDF-Merger/internal/infra/logger"
	"github.com/blanc86/PDF-Merger/internal/ui/tui"
	"github.com/blanc86/PDF-Merger/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var root string

	cmd := &cobra.Command{
		Use:          "pdfmerge",
		Short:        "Concatenate PDF files, preserving input order",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(root, false, false)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  app.root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			var store = app.store
			if !app.cfg.Reports.Enabled {
				store = nil
			}

			merge := usecase.NewMergeDocuments(app.engine,
				usecase.WithReportStore(store),
				usecase.WithLogger(logger.L()),
			)
			scan := usecase.NewScanInputs(app.scanner, app.engine,
				usecase.WithScanLogger(logger.L()),
			)

			deps := tui.Deps{
				Merger:        merge,
				Scanner:       scan,
				InputDir:      app.inputDir(""),
				DefaultOutput: app.defaultOutput,
				Logger:        logger.L(),
				Debug:         debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .pdfmerge/logs/pdfmerge.log")
	cmd.PersistentFlags().StringVar(&root, "root", "", "Project root (optional; defaults to the working directory)")

	cmd.AddCommand(initCmd())
	cmd.AddCommand(mergeCmd())
	cmd.AddCommand(scanCmd())
	cmd.AddCommand(reportCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(buildinfo.String())
		},
	}
}
