package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/previplan/previplan/internal/domain"
)

// CSVFormatter implements the month-level export contract: one row per
// simulated month, money with two decimals, rates as four-decimal
// percentages. Positive cash flow is prefixed "+", withdrawals "-",
// and a month with no flow renders "-".
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"age", "year", "month", "cashFlow", "goalsEventsImpact", "balance", "projectedBalance", "ipcaRate%", "effectiveRate%"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, year := range result.Years {
		for _, p := range year.Months {
			row := []string{
				strconv.Itoa(p.Age),
				strconv.Itoa(p.Year),
				strconv.Itoa(int(p.Month)),
				cashFlowCell(p),
				p.GoalsEventsImpact.StringFixed(2),
				p.Balance.StringFixed(2),
				p.PlannedBalance.StringFixed(2),
				ratePercent(p.IPCARate),
				ratePercent(p.EffectiveRate),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func cashFlowCell(p domain.ProjectionPoint) string {
	flow := p.CashFlow()
	switch {
	case flow.IsPositive():
		return "+" + flow.StringFixed(2)
	case flow.IsNegative():
		return flow.StringFixed(2)
	}
	return "-"
}
