package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-time/pkg/config"
	"github.com/willbeason/escape-time/pkg/escape"
	"github.com/willbeason/escape-time/pkg/logger"
	"go.uber.org/zap"
	"math"
	"os"
	"strconv"
)

const (
	flagConfig              = "config"
	flagEscapeRadiusSquared = "escape-radius-squared"
	flagMaxIterations       = "max-iterations"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape <real> <imaginary> [<real> <imaginary> ...]",
		Short: "Print the smoothed Mandelbrot escape time of each point",
		Args:  pointArgs,
		RunE:  runCmd,
	}

	cmd.Flags().StringP(flagConfig, "c", "", "yaml config file path")
	// Zero defaults keep pflag from printing a default that config may override.
	cmd.Flags().Float64(flagEscapeRadiusSquared, 0, fmt.Sprintf(
		"threshold on |z|^2 past which a point has diverged; overrides ESCAPE_RADIUS_SQUARED and config (built-in %v)",
		escape.DefaultEscapeRadiusSquared))
	cmd.Flags().Int(flagMaxIterations, 0, fmt.Sprintf(
		"maximum number of iterations per point; overrides ESCAPE_MAX_ITERATIONS and config (built-in %d)",
		escape.DefaultMaxIterations))

	return cmd
}

func pointArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("expected pairs of real and imaginary parts, got %d args", len(args))
	}

	for _, arg := range args {
		if _, err := parseCoordinate(arg); err != nil {
			return err
		}
	}

	return nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing coordinate %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}

	return v, nil
}

func loadParams(cmd *cobra.Command) (*config.Config, escape.Params, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, escape.Params{}, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, escape.Params{}, err
	}

	params := cfg.Params()

	// Explicit flags win over config and environment.
	if cmd.Flags().Changed(flagEscapeRadiusSquared) {
		params.EscapeRadiusSquared, err = cmd.Flags().GetFloat64(flagEscapeRadiusSquared)
		if err != nil {
			return nil, escape.Params{}, err
		}
	}
	if cmd.Flags().Changed(flagMaxIterations) {
		params.MaxIterations, err = cmd.Flags().GetInt(flagMaxIterations)
		if err != nil {
			return nil, escape.Params{}, err
		}
	}

	return cfg, params, params.Validate()
}

func runCmd(cmd *cobra.Command, args []string) error {
	cfg, params, err := loadParams(cmd)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if err = logger.Setup(cfg.Environment); err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}

	ctx := logger.WithFields(cmd.Context(),
		zap.Float64("escapeRadiusSquared", params.EscapeRadiusSquared),
		zap.Int("maxIterations", params.MaxIterations),
	)
	defer func() {
		_ = logger.Get(ctx).Sync()
	}()

	out := cmd.OutOrStdout()
	for i := 0; i < len(args); i += 2 {
		// Already checked by pointArgs.
		re, _ := parseCoordinate(args[i])
		im, _ := parseCoordinate(args[i+1])

		smoothed := params.Evaluate(complex(re, im))
		logger.Debug(ctx, "evaluated point",
			zap.Float64("real", re), zap.Float64("imaginary", im), zap.Float64("smoothed", smoothed))

		_, err = fmt.Fprintf(out, "%s %s %s\n",
			strconv.FormatFloat(re, 'g', -1, 64),
			strconv.FormatFloat(im, 'g', -1, 64),
			strconv.FormatFloat(smoothed, 'g', -1, 64))
		if err != nil {
			return err
		}
	}

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
