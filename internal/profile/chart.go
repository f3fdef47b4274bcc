package profile

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/telemark-pro/pov-backend-go/internal/models"
)

// WriteAltitudeChart renders the altitude profile (distance along the
// piste vs elevation) as a standalone HTML page.
func WriteAltitudeChart(w io.Writer, track models.Track, name string) error {
	if len(track) == 0 {
		return fmt.Errorf("empty track")
	}
	if name == "" {
		name = "Pista"
	}

	dist := CumulativeDistance(track)

	xs := make([]string, len(track))
	ys := make([]opts.LineData, len(track))
	for i, p := range track {
		xs[i] = fmt.Sprintf("%.0f", dist[i])
		ys[i] = opts.LineData{Value: p.Elev}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("Profilo altimetrico – %s", name),
			Width:     "900px",
			Height:    "300px",
		}),
		charts.WithTitleOpts(opts.Title{Title: name, Subtitle: "Profilo altimetrico"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Distanza lungo la pista (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Altitudine (m)", NameLocation: "middle", NameGap: 40}),
	)

	line.SetXAxis(xs).AddSeries("Altitudine", ys,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render altitude chart: %w", err)
	}
	return nil
}
