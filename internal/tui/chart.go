package tui

import (
	"github.com/charmbracelet/lipgloss"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"

	"github.com/jask/jaskwallet/internal/database/repository"
)

const chartHeight = 8

// balanceChart renders an account's balance history as a braille line
// chart. Returns "" when there is nothing worth plotting.
func balanceChart(points []repository.BalancePoint, width int) string {
	if len(points) < 2 || width < 16 {
		return ""
	}

	minVal, maxVal := points[0].BalanceCents, points[0].BalanceCents
	for _, p := range points {
		if p.BalanceCents < minVal {
			minVal = p.BalanceCents
		}
		if p.BalanceCents > maxVal {
			maxVal = p.BalanceCents
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	// A little headroom so the line does not hug the frame.
	pad := (maxVal - minVal) / 10
	if pad == 0 {
		pad = 1
	}

	chart := tslc.New(width, chartHeight)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorPeach))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	chart.SetTimeRange(points[0].At, points[len(points)-1].At)
	chart.SetViewTimeRange(points[0].At, points[len(points)-1].At)
	chart.SetYRange(float64(minVal-pad)/100, float64(maxVal+pad)/100)
	chart.SetViewYRange(float64(minVal-pad)/100, float64(maxVal+pad)/100)

	for _, p := range points {
		chart.Push(tslc.TimePoint{Time: p.At, Value: float64(p.BalanceCents) / 100})
	}
	chart.DrawBraille()
	return chart.View()
}
