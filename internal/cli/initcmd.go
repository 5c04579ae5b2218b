package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blanc86/PDF-Merger/internal/domain"
	"github.com/blanc86/PDF-Merger/internal/infra/fsproject"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create the project layout (input/, output/, reports/, pdfmerge.yaml)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rootFlag, _ := cmd.Flags().GetString("root")

			root, err := resolveRoot(rootFlag)
			if err != nil {
				return err
			}

			if err := fsproject.NewInitializer().Init(root, domain.DefaultConfig(), force); err != nil {
				return err
			}

			fmt.Printf("Initialized pdfmerge project in %s\n", root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing pdfmerge.yaml")
	return c
}
