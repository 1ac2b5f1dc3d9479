package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JonMunkholm/csvtransform/internal/config"
	"github.com/JonMunkholm/csvtransform/internal/core"
	"github.com/JonMunkholm/csvtransform/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		input      string
		output     string
		profile    string
		transforms []string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "csvtransform",
		Short:         "Reshape a CSV export into a fixed, fully quoted column layout",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Files.Input = input
			}
			if flags.Changed("output") {
				cfg.Files.Output = output
			}
			if flags.Changed("profile") {
				cfg.CSV.Profile = profile
			}
			if flags.Changed("transforms") {
				cfg.CSV.Transforms = transforms
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			slog.Debug("configuration loaded", "config", cfg.String())

			_, err = run(cmd.Context(), cfg)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV path (overrides INPUT_FILE)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV path (overrides OUTPUT_FILE)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Output profile (overrides CSV_PROFILE)")
	cmd.Flags().StringSliceVarP(&transforms, "transforms", "t", nil, "Transforms to apply, in order (overrides CSV_TRANSFORMS)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newProfilesCmd())

	return cmd
}

// run resolves the configured profile and executes one pipeline.
func run(ctx context.Context, cfg *config.Config) (core.Result, error) {
	p, ts, err := core.ResolveProfile(cfg.CSV.Profile, cfg.CSV.Transforms)
	if err != nil {
		return core.Result{}, err
	}

	pipeline, err := core.NewPipeline(core.Options{
		Profile:    p.Key,
		Input:      cfg.Files.Input,
		Output:     cfg.Files.Output,
		Schema:     p.Columns,
		Transforms: ts,
		Comma:      cfg.CSV.Comma(),
		LazyQuotes: cfg.CSV.LazyQuotes,
	})
	if err != nil {
		return core.Result{}, err
	}

	return pipeline.Run(ctx)
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List registered profiles and transforms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, p := range core.Profiles() {
				fmt.Fprintf(out, "%s\t%s\t%d columns\tdefault transforms: %v\n",
					p.Key, p.Label, len(p.Columns), p.Transforms)
			}
			fmt.Fprintf(out, "transforms: %v\n", core.TransformNames())
		},
	}
}
