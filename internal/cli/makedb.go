package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openmobility/gtfsdb/internal/gtfscsv"
	"github.com/openmobility/gtfsdb/internal/gtfsdb"
	"github.com/openmobility/gtfsdb/internal/service"
)

var makeDBCmd = &cobra.Command{
	Use:   "make-db <feed-dir>",
	Short: "Import a feed directory into the database, replacing its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := gtfscsv.Open(args[0])
		if err != nil {
			return err
		}

		store, err := gtfsdb.Open(databasePath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := service.New(store).Rebuild(feed); err != nil {
			return err
		}
		slog.Info("Wrote " + databasePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(makeDBCmd)
}
