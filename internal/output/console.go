package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/previplan/previplan/internal/domain"
)

// DefaultCurrency is used when the plan does not carry a currency code.
const DefaultCurrency = "BRL"

// ConsoleFormatter renders a year-level table plus the plan figures.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	code := result.Currency
	if code == "" {
		code = DefaultCurrency
	}

	buf := &bytes.Buffer{}
	for _, w := range result.Warnings {
		fmt.Fprintf(buf, "warning: %s\n", w.Warning())
	}

	tw := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tAGE\tCONTRIB\tWITHDRAWN\tGOALS\tBALANCE\tPLANNED\tVARIANCE")
	for _, y := range result.Years {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			y.Year,
			y.Age,
			formatCurrency(y.Contribution, code),
			formatCurrency(y.Withdrawal, code),
			formatCurrency(y.GoalsEventsImpact, code),
			formatCurrency(y.Balance, code),
			formatCurrency(y.PlannedBalance, code),
			formatCurrency(y.Variance(), code),
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	if f := result.Figures; f != nil {
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "Present value at retirement:   %s\n", formatCurrency(f.PresentValue, code))
		fmt.Fprintf(buf, "Target future value:           %s\n", formatCurrency(f.TargetFutureValue, code))
		fmt.Fprintf(buf, "Required monthly deposit:      %s\n", formatCurrency(f.RequiredMonthlyDeposit, code))
		fmt.Fprintf(buf, "Real return component:         %s\n", formatCurrency(f.RealReturnComponent, code))
		fmt.Fprintf(buf, "Inflation component:           %s\n", formatCurrency(f.InflationComponent, code))
		if f.Illustrative != nil {
			fmt.Fprintf(buf, "Necessary future value:        %s\n", formatCurrency(f.Illustrative.NecessaryFutureValue, code))
			fmt.Fprintf(buf, "Necessary monthly deposit:     %s\n", formatCurrency(f.Illustrative.NecessaryMonthlyDeposit, code))
		}
	}

	return buf.Bytes(), nil
}

// formatCurrency renders an amount with the plan's display currency.
// Display concern only; amounts are rounded to cents here and nowhere
// else.
func formatCurrency(amount decimal.Decimal, code string) string {
	cents := amount.Mul(decimalHundred).Round(0).IntPart()
	return money.New(cents, code).Display()
}
