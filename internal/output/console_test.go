package output

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previplan/previplan/internal/domain"
)

func TestConsoleFormat(t *testing.T) {
	result := sampleResult()
	result.Figures = &domain.PlanFigures{
		PresentValue:           decimal.NewFromInt(1527420),
		TargetFutureValue:      decimal.NewFromInt(2260900),
		RequiredMonthlyDeposit: decimal.NewFromFloat(11243.17),
	}

	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "YEAR")
	assert.Contains(t, text, "2024")
	assert.Contains(t, text, "R$", "BRL amounts use the real symbol")
	assert.Contains(t, text, "Present value at retirement")
	assert.Contains(t, text, "Required monthly deposit")
	assert.NotContains(t, text, "Necessary future value",
		"the illustrative block only prints when present")
}

func TestConsoleFormatWarnings(t *testing.T) {
	result := sampleResult()
	result.Warnings = []domain.StaleActiveRegimeWarning{{
		FlaggedID:  "base",
		ResolvedID: "raise",
	}}

	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "warning:")
}

func TestJSONFormatRoundTrip(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "BRL", decoded["currency"])

	years, ok := decoded["years"].([]interface{})
	require.True(t, ok)
	require.Len(t, years, 1)
}
