package output

import (
	"github.com/goccy/go-json"

	"github.com/previplan/previplan/internal/domain"
)

// JSONFormatter renders the full result tree for chart consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
