// Package charts renders dashboard series as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// MonthlyExpenses renders a bar chart with one bar per calendar month.
// values must hold exactly twelve entries, January first.
func MonthlyExpenses(year int, values []float64) ([]byte, error) {
	if len(values) != 12 {
		return nil, fmt.Errorf("expected 12 monthly values, got %d", len(values))
	}

	maxValue := 0.0
	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		if v > maxValue {
			maxValue = v
		}
		bars = append(bars, chart.Value{
			Label: time.Month(i + 1).String()[:3],
			Value: v,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(160),
			},
		})
	}
	// go-chart cannot derive ticks from an all-zero range.
	if maxValue <= 0 {
		maxValue = 1
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf("Expenses %d", year),
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render monthly expenses chart: %w", err)
	}
	return buffer.Bytes(), nil
}
