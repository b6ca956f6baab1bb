package output

import (
	"bytes"
	"html/template"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	money "github.com/rpgo/rent-vs-buy/pkg/decimal"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth   = 760
	chartHeight  = 360
	chartYTicks  = 5
	chartMaxXTic = 10
)

var (
	buyColor       = drawing.ColorFromHex("2563eb")
	rentColor      = drawing.ColorFromHex("16a34a")
	crossoverColor = drawing.ColorFromHex("f59e0b")
	gridColor      = drawing.ColorFromHex("e2e8f0")
	zeroColor      = drawing.ColorFromHex("94a3b8")
)

// buildChart lays out both net worth trajectories and the crossover marker.
// It returns nil for fewer than two records.
func buildChart(result *domain.ScenarioResult) *chart.Chart {
	records := result.Records
	if len(records) < 2 {
		return nil
	}

	years := make([]float64, len(records))
	buy := make([]float64, len(records))
	rent := make([]float64, len(records))
	lo, hi := 0.0, 0.0
	for i, yr := range records {
		years[i] = float64(yr.Year)
		buy[i] = yr.BuyNetWorth.InexactFloat64()
		rent[i] = yr.RentNetWorth.InexactFloat64()
		for _, v := range []float64{buy[i], rent[i]} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	lastYear := records[len(records)-1].Year

	step := 1
	if len(records)-1 > chartMaxXTic {
		step = (len(records) - 1 + chartMaxXTic - 1) / chartMaxXTic
	}
	var xTicks []chart.Tick
	for _, yr := range records {
		if yr.Year%step == 0 || yr.Year == lastYear {
			xTicks = append(xTicks, chart.Tick{Value: float64(yr.Year), Label: intToString(yr.Year)})
		}
	}

	yTicks := make([]chart.Tick, 0, chartYTicks+1)
	for i := 0; i <= chartYTicks; i++ {
		v := lo + (hi-lo)*float64(i)/chartYTicks
		yTicks = append(yTicks, chart.Tick{
			Value: v,
			Label: money.NewMoney(v).Compact(),
		})
	}

	zero := chart.GridLine{
		Value: 0,
		Style: chart.Style{StrokeColor: zeroColor, StrokeWidth: 1, StrokeDashArray: []float64{4, 3}},
	}
	if lo >= 0 {
		zero.Style.Hidden = true
	}

	c := &chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "Year",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(lastYear)},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks:          yTicks,
			Zero:           zero,
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Buy",
				Style:   chart.Style{StrokeColor: buyColor, StrokeWidth: 2.5},
				XValues: years,
				YValues: buy,
			},
			chart.ContinuousSeries{
				Name:    "Rent & invest",
				Style:   chart.Style{StrokeColor: rentColor, StrokeWidth: 2.5},
				XValues: years,
				YValues: rent,
			},
		},
	}

	if cr := result.Crossover; cr != nil {
		c.Series = append(c.Series, chart.AnnotationSeries{
			Name: "Crossover",
			Style: chart.Style{
				StrokeColor: crossoverColor,
				FillColor:   crossoverColor.WithAlpha(64),
				FontSize:    10,
			},
			Annotations: []chart.Value2{{
				XValue: cr.Year.InexactFloat64(),
				YValue: cr.NetWorth.InexactFloat64(),
				Label:  "Year " + FormatYear(cr.Year),
			}},
		})
	}

	return c
}

// renderChart renders the net worth chart as inline SVG. An empty result means there is nothing to chart.
func renderChart(result *domain.ScenarioResult) (template.HTML, error) {
	c := buildChart(result)
	if c == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
