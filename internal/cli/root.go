package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmobility/gtfsdb/internal/gtfsdb"
	"github.com/openmobility/gtfsdb/internal/service"
)

var databasePath string

var rootCmd = &cobra.Command{
	Use:   "gtfsdb",
	Short: "Import GTFS feeds into SQLite and query them back out",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&databasePath, "database", "d", "gtfs.db", "Path to the SQLite database")
}

// openService opens the database and wraps it in a Service. The returned
// closer releases the connection.
func openService() (*service.Service, func(), error) {
	store, err := gtfsdb.Open(databasePath)
	if err != nil {
		return nil, nil, err
	}
	return service.New(store), func() { _ = store.Close() }, nil
}
