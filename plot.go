package staysync

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineOccupancy generates an echart line chart for a forecast result plotting
// the actual slice against the forecast slice grouped by provenance.
func LineOccupancy(res *Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    fmt.Sprintf("Hotel Occupancy Forecast - %s", res.Property.Name),
				Subtitle: fmt.Sprintf("last %d days actual, next %d days forecast", ActualDays, HorizonDays),
			},
		),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	dates := make([]string, 0, len(res.Points))
	lineDataActual := make([]opts.LineData, 0, len(res.Points))
	lineDataForecast := make([]opts.LineData, 0, len(res.Points))
	for _, p := range res.Points {
		dates = append(dates, p.Date.Format(time.DateOnly))
		switch p.Source {
		case SourceActual:
			lineDataActual = append(lineDataActual, opts.LineData{Value: p.Occupied})
			lineDataForecast = append(lineDataForecast, opts.LineData{Value: "-"})
		case SourceForecast:
			lineDataActual = append(lineDataActual, opts.LineData{Value: "-"})
			lineDataForecast = append(lineDataForecast, opts.LineData{Value: p.Occupied})
		}
	}

	line.SetXAxis(dates).
		AddSeries(SourceActual, lineDataActual).
		AddSeries(SourceForecast, lineDataForecast)
	return line
}

// RenderPlot writes the forecast chart page as a standalone HTML document.
func RenderPlot(res *Result, w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(LineOccupancy(res))
	return page.Render(w)
}

// PlotHTML returns the forecast chart page as an HTML string.
func PlotHTML(res *Result) (string, error) {
	var buf bytes.Buffer
	if err := RenderPlot(res, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlotFile renders the forecast chart page to the given path.
func PlotFile(res *Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return RenderPlot(res, file)
}
