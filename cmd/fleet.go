package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleethealth/core/fleetgen"
	"github.com/kilianp07/fleethealth/pkg/export"
)

var fleetFormat string

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetGenCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic fleet and print it",
	RunE:  runFleetGenerate,
}

func init() {
	fleetGenCmd.Flags().StringVarP(&fleetFormat, "format", "f", "json", "output format: json or csv")
	fleetCmd.AddCommand(fleetGenCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fleet := fleetgen.New(cfg.Fleet).Generate()
	switch fleetFormat {
	case "json":
		return export.WriteJSON(os.Stdout, fleet)
	case "csv":
		return export.WriteCSV(os.Stdout, fleet)
	default:
		return fmt.Errorf("unsupported format: %s", fleetFormat)
	}
}
