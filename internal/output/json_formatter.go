package output

import (
	"encoding/json"

	"github.com/rpgo/rent-vs-buy/internal/domain"
)

// JSONFormatter serializes the scenario result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
