package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"distbench/adapters/report"
	"distbench/adapters/rng"
	"distbench/app"
	"distbench/domain/bench"
	"distbench/internal"
	"distbench/internal/config"
	"distbench/internal/debugserver"
	"distbench/internal/profiling"
	"distbench/ports"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "distbench",
		Short: "Compare object-owned vs explicit-state Poisson sampling",
		Long: `distbench times two call patterns for drawing Poisson samples across many
independent agents: constructing a frozen distribution object per agent versus
calling a stateless draw function with an explicit generator handle.

Both patterns produce bit-identical sequences for identical seeds; only the
per-construction overhead differs. Use "verify" to check the equivalence claim.`,
	}

	rootCmd.AddCommand(
		newCompareCmd(cfg),
		newProfileCmd(cfg),
		newVerifyCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompareCmd(cfg *config.Config) *cobra.Command {
	var (
		agents     int
		steps      int
		lambda     float64
		seed       uint64
		reportFile string
		serve      bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run both variants and report elapsed time and call counts",
		Long: `Run both sampling variants back to back with independent seed batches.

Example: distbench compare --agents 10000 --steps 1000 --lambda 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()
			service := app.NewComparatorService(rng.NewPCGAdapter(seed), logger)

			var server *debugserver.Server
			if serve || cfg.Profiling.Enabled {
				server = debugserver.New(":"+cfg.Profiling.Port, logger)
				go func() {
					if err := server.Start(); err != nil {
						logger.Error("debug server stopped: %v", err)
					}
				}()
			}

			collector := profiling.NewCollector()
			exp := bench.Experiment{Agents: agents, Steps: steps, Lambda: lambda}
			cmp, err := service.Compare(cmd.Context(), exp, collector)
			if err != nil {
				return err
			}
			if server != nil {
				server.SetLatest(cmp)
			}

			printComparison(cmp)
			benchReport := collector.Report()
			benchReport.Sort(profiling.SortByTotal)
			fmt.Print(benchReport.String())

			if reportFile != "" {
				var writer ports.ReportPort = report.NewExcelWriter(reportFile)
				if err := writer.WriteComparison(cmd.Context(), cmp); err != nil {
					return err
				}
				logger.Info("report written to %s", reportFile)
			}

			if serve {
				logger.Info("results available at /runs/latest; Ctrl-C to exit")
				select {}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&agents, "agents", cfg.Bench.Agents, "Number of independent simulated agents")
	cmd.Flags().IntVar(&steps, "steps", cfg.Bench.Steps, "Samples drawn per agent")
	cmd.Flags().Float64Var(&lambda, "lambda", cfg.Bench.Lambda, "Poisson rate parameter")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.Bench.Seed, "Parent seed for agent seed generation")
	cmd.Flags().StringVar(&reportFile, "report", cfg.Report.ExcelFile, "Write results to this xlsx file")
	cmd.Flags().BoolVar(&serve, "serve", false, "Keep serving pprof and results after the run")

	return cmd
}

func newProfileCmd(cfg *config.Config) *cobra.Command {
	var (
		variant    string
		agents     int
		steps      int
		lambda     float64
		seed       uint64
		cpuProfile string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile one variant: call counts and cumulative time by label",
		Long: `Run one variant under the profiler and print per-label call counts and
cumulative/per-call time sorted by total time. With --cpuprofile a pprof CPU
profile covering the run is written as well.

Example: distbench profile --variant object --agents 10000 --steps 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()
			service := app.NewComparatorService(rng.NewPCGAdapter(seed), logger)
			exp := bench.Experiment{Agents: agents, Steps: steps, Lambda: lambda}

			run, label, err := variantRunner(cmd.Context(), service, variant, exp)
			if err != nil {
				return err
			}

			var profiler ports.ProfilerPort = profiling.NewProfiler(cpuProfile)
			profReport, err := profiler.Profile(cmd.Context(), label, run)
			if err != nil {
				return err
			}
			fmt.Print(profReport.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "object", "Variant to profile: object or explicit")
	cmd.Flags().IntVar(&agents, "agents", cfg.Bench.Agents, "Number of independent simulated agents")
	cmd.Flags().IntVar(&steps, "steps", cfg.Bench.Steps, "Samples drawn per agent")
	cmd.Flags().Float64Var(&lambda, "lambda", cfg.Bench.Lambda, "Poisson rate parameter")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.Bench.Seed, "Parent seed for agent seed generation")
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", cfg.Profiling.CPUProfile, "Write pprof CPU profile to this file")

	return cmd
}

func newVerifyCmd(cfg *config.Config) *cobra.Command {
	var (
		seed   uint32
		steps  int
		lambda float64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify both variants produce bit-identical sequences for a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewDefaultLogger()
			service := app.NewComparatorService(rng.NewPCGAdapter(cfg.Bench.Seed), logger)

			if err := service.VerifyEquivalence(cmd.Context(), seed, lambda, steps); err != nil {
				return err
			}
			fmt.Printf("equivalent: seed %d, lambda %.2f, %d steps\n", seed, lambda, steps)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 12345, "Agent seed to replay")
	cmd.Flags().IntVar(&steps, "steps", 1000, "Samples to draw per pattern")
	cmd.Flags().Float64Var(&lambda, "lambda", cfg.Bench.Lambda, "Poisson rate parameter")

	return cmd
}

// variantRunner maps a variant flag to a profiler callable
func variantRunner(ctx context.Context, service *app.ComparatorService, variant string, exp bench.Experiment) (func(*profiling.Collector) error, string, error) {
	switch variant {
	case "object", string(bench.VariantObjectOwned):
		return func(c *profiling.Collector) error {
			_, err := service.RunObjectOwned(ctx, exp, c)
			return err
		}, "run_object_owned", nil
	case "explicit", string(bench.VariantExplicitState):
		return func(c *profiling.Collector) error {
			_, err := service.RunExplicitState(ctx, exp, c)
			return err
		}, "run_explicit_state", nil
	default:
		return nil, "", fmt.Errorf("unknown variant %q (want object or explicit)", variant)
	}
}

func printComparison(cmp *bench.Comparison) {
	fmt.Printf("run %s: agents=%d steps=%d lambda=%.2f\n",
		cmp.RunID, cmp.Experiment.Agents, cmp.Experiment.Steps, cmp.Experiment.Lambda)
	fmt.Printf("  object-owned:   %s (%d calls, %s/call)\n",
		cmp.ObjectOwned.Elapsed, cmp.ObjectOwned.SamplingCalls, cmp.ObjectOwned.PerCall())
	fmt.Printf("  explicit-state: %s (%d calls, %s/call)\n",
		cmp.ExplicitState.Elapsed, cmp.ExplicitState.SamplingCalls, cmp.ExplicitState.PerCall())
	fmt.Printf("  ratio: %.2fx, faster: %s\n", cmp.Speedup, cmp.Faster())
}
