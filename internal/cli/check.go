package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check cross-references between stored records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		issues, err := svc.CheckReferences()
		if err != nil {
			return err
		}
		for _, issue := range issues {
			slog.Error(issue)
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d invalid reference(s)", len(issues))
		}
		slog.Info("All references are valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
