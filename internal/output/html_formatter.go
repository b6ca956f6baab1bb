package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rpgo/rent-vs-buy/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an SVG net worth chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"whole": FormatWholeCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"year":  FormatYear,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	svg, err := renderChart(result)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		*domain.ScenarioResult
		Outcome     Outcome
		Assumptions []string
		Chart       template.HTML
	}{result, AnalyzeResult(result), GenerateAssumptions(result.Inputs), svg}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
