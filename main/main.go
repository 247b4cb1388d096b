package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rawbytedev/intvec"
)

var (
	verbose    bool
	configPath string
	showStats  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "intvec-demo",
	Short: "Exercises every intvec lifecycle operation in a fixed sequence",
	Long: `intvec-demo drives the intvec owning value type through its whole
lifecycle surface in four scenarios: construction variety, conversion in
both directions, copy versus move construction, and copy versus move
assignment. Every operation emits one trace line, in invocation order.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.OutputPaths = []string{"stdout"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		intvec.SetTracer(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := LoadScenario(configPath)
		if err != nil {
			return err
		}

		var ca *intvec.CountingAllocator
		if showStats {
			ca = intvec.NewCountingAllocator(nil)
			intvec.SetAllocator(ca)
		}

		runConstruction(scenario)
		runConversion(scenario)
		runCopyVsMoveConstruct(scenario)
		runCopyVsMoveAssign(scenario)

		if ca != nil {
			st := ca.Stats()
			logger.Info("allocator stats",
				zap.Int64("allocs", st.Allocs),
				zap.Int64("frees", st.Frees),
				zap.Int64("live", st.Live),
				zap.Int64("faults", st.Faults))
			if st.Live != 0 || st.Faults != 0 {
				return fmt.Errorf("allocator imbalance: %d live, %d faults", st.Live, st.Faults)
			}
		}
		return nil
	},
}

// runConstruction covers default, parameterized and conversion
// construction. Releases happen at scenario end, mirroring scope exit.
func runConstruction(s Scenario) {
	logger.Info("scenario 1: construction variety")
	a := intvec.New()
	defer a.Release()
	a1 := intvec.NewWithSize(s.ParamSize)
	defer a1.Release()
	a2 := intvec.NewFromMagnitude(s.Magnitude)
	defer a2.Release()
}

// runConversion covers conversion in both directions: magnitude in,
// element count out.
func runConversion(s Scenario) {
	logger.Info("scenario 2: conversion both ways")
	a3 := intvec.NewFromMagnitude(s.Magnitude)
	defer a3.Release()
	n := a3.Magnitude()
	logger.Debug("converted back", zap.Int("magnitude", n))
}

func runCopyVsMoveConstruct(s Scenario) {
	logger.Info("scenario 3: copy vs move construction")
	a4 := intvec.NewWithSize(s.CopySize)
	defer a4.Release()
	a5 := a4.Clone()
	defer a5.Release()
	a6 := a4.Clone()
	defer a6.Release()

	a7 := a5.Move()
	defer a7.Release()
	a8 := a6.Move()
	defer a8.Release()
}

func runCopyVsMoveAssign(s Scenario) {
	logger.Info("scenario 4: copy vs move assignment")
	a9 := intvec.NewWithSize(s.AssignSize)
	defer a9.Release()
	a10 := intvec.New()
	defer a10.Release()
	a10.CopyFrom(a9)

	a11 := intvec.New()
	defer a11.Release()
	a11.TakeFrom(a9)

	// the original artifact's move was a swap; it survives as an
	// explicit operation
	a11.Swap(a10)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML scenario file overriding the default sizes")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "account every allocation and report the balance")
}
