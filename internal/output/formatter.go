// Package output renders projection results for table, chart and
// export consumers.
package output

import (
	"github.com/shopspring/decimal"

	"github.com/previplan/previplan/internal/domain"
)

// Formatter renders a projection result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.ProjectionResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the formatter registered under the given
// name, or nil when no such format exists.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatNames lists the registered format names.
func FormatNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

var decimalHundred = decimal.NewFromInt(100)

// ratePercent renders a monthly rate as a 4-decimal percentage.
func ratePercent(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(4)
}
