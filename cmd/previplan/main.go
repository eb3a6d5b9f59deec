package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/previplan/previplan/internal/calculation"
	"github.com/previplan/previplan/internal/config"
	"github.com/previplan/previplan/internal/domain"
	"github.com/previplan/previplan/internal/output"
	"github.com/previplan/previplan/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "previplan",
	Short: "Time-segmented retirement projection engine",
	Long: `previplan computes month-by-month wealth trajectories for a
retirement plan: time-bounded parameter regimes, anchoring against
actual account history, one-off goal events and the monthly deposit
required to hit the plan's target.`,
}

var projectCmd = &cobra.Command{
	Use:   "project [plan-file]",
	Short: "Run the projection and print it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := runProjection(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			log.Fatalf("unsupported format %q (have: %s)", format, strings.Join(output.FormatNames(), ", "))
		}
		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Plan file %s is valid\n", args[0])
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [plan-file]",
	Short: "Write the month-level CSV export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := runProjection(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}
		data, err := output.CSVFormatter{}.Format(result)
		if err != nil {
			log.Fatal(err)
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			fmt.Print(string(data))
			return
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", outPath)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [plan-file]",
	Short: "Browse the projection interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := loadInput(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}
		engine := newEngine(cmd)

		nominal, err := engine.Run(input)
		if err != nil {
			log.Fatal(err)
		}
		realInput := *input
		realInput.RealValues = true
		real, err := engine.Run(&realInput)
		if err != nil {
			log.Fatal(err)
		}

		if _, err := tea.NewProgram(tui.NewModel(nominal, real), tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func loadInput(cmd *cobra.Command, path string) (*domain.ProjectionInput, error) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	// The engine never reads the clock; the as-of date comes from the
	// plan file or this flag, defaulting to the plan's initial date so
	// runs stay reproducible.
	if asOf, _ := cmd.Flags().GetString("as-of"); asOf != "" {
		parsed, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return nil, fmt.Errorf("invalid --as-of date: %w", err)
		}
		input.AsOf = parsed
	}
	if input.AsOf.IsZero() {
		input.AsOf = input.Plan.PlanInitialDate
	}

	if real, _ := cmd.Flags().GetBool("real"); real {
		input.RealValues = true
	}
	return input, nil
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		engine.SetTracer(zerologTracer{log: logger})
	}
	return engine
}

func runProjection(cmd *cobra.Command, path string) (*domain.ProjectionResult, error) {
	input, err := loadInput(cmd, path)
	if err != nil {
		return nil, err
	}
	return newEngine(cmd).Run(input)
}

// zerologTracer adapts the engine's trace hook onto structured logging.
type zerologTracer struct {
	log zerolog.Logger
}

func (t zerologTracer) RegimeResolved(date time.Time, regime *domain.MicroPlan) {
	t.log.Debug().
		Str("month", date.Format("2006-01")).
		Str("regime", regime.ID).
		Str("effective", regime.EffectiveDate.Format("2006-01")).
		Str("expected_return", regime.ExpectedReturn.String()).
		Str("inflation", regime.Inflation.String()).
		Msg("regime resolved")
}

func (t zerologTracer) MonthSimulated(point domain.ProjectionPoint) {
	t.log.Debug().
		Int("year", point.Year).
		Int("month", int(point.Month)).
		Str("balance", point.Balance.StringFixed(2)).
		Str("planned", point.PlannedBalance.StringFixed(2)).
		Bool("historical", point.IsHistorical).
		Msg("month simulated")
}

func main() {
	for _, cmd := range []*cobra.Command{projectCmd, exportCmd, tuiCmd} {
		cmd.Flags().String("as-of", "", "As-of date (YYYY-MM-DD); defaults to the plan's initial date")
		cmd.Flags().Bool("real", false, "Rebase values to plan-inception purchasing power")
		cmd.Flags().Bool("debug", false, "Trace regime resolution and month simulation")
	}
	projectCmd.Flags().String("format", "console", "Output format: console, csv or json")
	exportCmd.Flags().StringP("output", "o", "", "Output file (stdout when empty)")

	rootCmd.AddCommand(projectCmd, validateCmd, exportCmd, tuiCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
