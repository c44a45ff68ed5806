package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openmobility/gtfsdb/internal/gtfs"
	"github.com/openmobility/gtfsdb/internal/output"
)

var (
	formatName  string
	routeFilter string
	withinPath  string
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Query stored records",
}

func addFormatFlag(flags *pflag.FlagSet) {
	flags.StringVarP(&formatName, "format", "f", string(output.FormatCSV),
		"Output format ("+strings.Join(output.Formats(), " or ")+")")
}

func writeOut[T gtfs.Record](records []T) error {
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	return output.Write(os.Stdout, format, records)
}

func routeIDFilter() *gtfs.RouteID {
	if routeFilter == "" {
		return nil
	}
	id := gtfs.RouteID(routeFilter)
	return &id
}

var getAgenciesCmd = &cobra.Command{
	Use:   "agencies",
	Short: "List agencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		agencies, err := svc.Agencies()
		if err != nil {
			return err
		}
		return writeOut(agencies)
	},
}

var getStopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "List stops, optionally only those inside a GeoJSON feature",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		var stops []gtfs.Stop
		if withinPath != "" {
			feature, err := os.ReadFile(withinPath)
			if err != nil {
				return err
			}
			stops, err = svc.StopsWithin(string(feature))
			if err != nil {
				return err
			}
		} else {
			stops, err = svc.Stops()
			if err != nil {
				return err
			}
		}
		return writeOut(stops)
	},
}

var getRoutesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List routes, optionally filtered by route ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		routes, err := svc.Routes(routeIDFilter())
		if err != nil {
			return err
		}
		return writeOut(routes)
	},
}

var getTripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List trips, optionally filtered by route ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		trips, err := svc.Trips(routeIDFilter())
		if err != nil {
			return err
		}
		return writeOut(trips)
	},
}

var getStopTimesCmd = &cobra.Command{
	Use:   "stop-times",
	Short: "List stop times",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := openService()
		if err != nil {
			return err
		}
		defer done()

		stopTimes, err := svc.StopTimes()
		if err != nil {
			return err
		}
		return writeOut(stopTimes)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{getAgenciesCmd, getStopsCmd, getRoutesCmd, getTripsCmd, getStopTimesCmd} {
		addFormatFlag(cmd.Flags())
		getCmd.AddCommand(cmd)
	}
	getRoutesCmd.Flags().StringVarP(&routeFilter, "route", "r", "", "Only the route with this ID")
	getTripsCmd.Flags().StringVarP(&routeFilter, "route", "r", "", "Only trips on the route with this ID")
	getStopsCmd.Flags().StringVar(&withinPath, "within", "", "Only stops inside the GeoJSON feature in this file")
	rootCmd.AddCommand(getCmd)
}
