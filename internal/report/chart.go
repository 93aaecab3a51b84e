package report

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/pable/go-inhouse-stats/internal/model"
)

// WriteRatingChart renders the per-role rating trajectory as a PNG. Series
// with fewer than two points are skipped since a lone current-rating sample
// has no trend to draw.
func WriteRatingChart(w io.Writer, player string, history map[model.Role][]model.RatingPoint) error {
	var series []chart.Series
	for _, role := range model.Roles() {
		points := history[role]
		if len(points) < 2 {
			continue
		}
		xs := make([]time.Time, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.At
			ys[i] = p.MMR
		}
		series = append(series, chart.TimeSeries{
			Name:    titleRole(role),
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("not enough rating history to plot")
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("MMR history for %s", player),
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
