package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleethealth/core/estimator"
)

var (
	estimateModel    string
	estimateInputs   estimator.Inputs
	estimateCRate    float64
	estimateCapacity float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Run the battery health calculator",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateModel, "model", "m", "linear", "estimation model: linear or nonlinear")
	estimateCmd.Flags().Float64Var(&estimateCapacity, "initial-capacity", 100, "rated starting capacity in percent")
	estimateCmd.Flags().IntVar(&estimateInputs.CycleCount, "cycles", 0, "completed charge cycles")
	estimateCmd.Flags().Float64Var(&estimateInputs.Temperature, "temperature", 25, "average operating temperature in °C")
	estimateCmd.Flags().Float64Var(&estimateInputs.DepthOfDischarge, "dod", 60, "average depth of discharge in percent")
	estimateCmd.Flags().Float64Var(&estimateInputs.RestingDays, "resting-days", 0, "days resting above 80% SoC")
	estimateCmd.Flags().IntVar(&estimateInputs.FastChargeEvents, "fast-charges", 0, "high charge-rate events")
	estimateCmd.Flags().Float64Var(&estimateCRate, "c-rate", 1, "typical charge rate (nonlinear model)")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	m, err := estimator.ModelByName(estimateModel)
	if err != nil {
		return err
	}
	in := estimateInputs
	in.InitialCapacity = estimateCapacity
	in.CRate = estimateCRate
	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid inputs: %w", err)
	}
	res := m.Estimate(in)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
