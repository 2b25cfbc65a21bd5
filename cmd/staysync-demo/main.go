// Command staysync-demo serves a small interactive page over the same
// forecast core as the API server: pick a property, enter an ADR, and get the
// occupancy plot, location map, and projected totals.
package main

import (
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/profile"

	staysync "github.com/mahadevpnair10/STAYSYNC"
	"github.com/mahadevpnair10/STAYSYNC/internal/bootstrap"
	"github.com/mahadevpnair10/STAYSYNC/internal/config"
	"github.com/mahadevpnair10/STAYSYNC/internal/logger"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Hotel Occupancy Segment Forecast</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
label { display: block; margin-top: 1em; }
iframe { width: 100%; height: 480px; border: 1px solid #ccc; margin-top: 1em; }
.totals { margin-top: 1em; font-size: 1.2em; }
.error { color: #b00; }
</style>
</head>
<body>
<h1>Hotel Occupancy Segment Forecast</h1>
<p>Forecasts the next 30 days of occupancy for a selected hotel segment.</p>
<form method="POST" action="/forecast">
	<label>Select Property
		<select name="property_name">
		{{range .Names}}<option value="{{.}}" {{if eq . $.Selected}}selected{{end}}>{{.}}</option>{{end}}
		</select>
	</label>
	<label>Average Daily Rate (ADR)
		<input type="number" name="adr" step="0.01" value="{{.ADR}}">
	</label>
	<button type="submit">Forecast</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .HasResult}}
<div class="totals">
	<div>Total Forecasted Room Nights: <strong>{{.RoomNights}}</strong></div>
	<div>Total Forecasted Revenue: <strong>{{.Revenue}}</strong></div>
</div>
<iframe srcdoc="{{.PlotHTML}}"></iframe>
<iframe srcdoc="{{.MapHTML}}"></iframe>
{{end}}
</body>
</html>
`))

type pageData struct {
	Names    []string
	Selected string
	ADR      string
	Error    string

	HasResult  bool
	RoomNights int
	Revenue    int
	PlotHTML   string
	MapHTML    string
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	port := flag.Int("port", 7860, "demo ui port")
	profileMode := flag.Bool("profile", false, "write a cpu profile for the session")
	flag.Parse()

	if *profileMode {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}
	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger setup failed:", err)
		os.Exit(1)
	}

	forecaster, err := bootstrap.BuildForecaster(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}
	names := forecaster.Catalog().Names()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return renderPage(c, pageData{Names: names})
	})
	e.POST("/forecast", func(c echo.Context) error {
		data := pageData{
			Names:    names,
			Selected: c.FormValue("property_name"),
			ADR:      c.FormValue("adr"),
		}

		var adr float64
		if _, err := fmt.Sscanf(c.FormValue("adr"), "%f", &adr); err != nil {
			data.Error = "ADR must be a number greater than 0"
			return renderPage(c, data)
		}

		res, err := forecaster.ForecastProperty(data.Selected, adr)
		if err != nil {
			data.Error = err.Error()
			return renderPage(c, data)
		}

		plotHTML, err := staysync.PlotHTML(res)
		if err != nil {
			data.Error = err.Error()
			return renderPage(c, data)
		}
		mapHTML, err := staysync.LocationMapHTML(res.Property)
		if err != nil {
			data.Error = err.Error()
			return renderPage(c, data)
		}

		data.HasResult = true
		data.RoomNights = res.RoomNights
		data.Revenue = res.Revenue
		data.PlotHTML = plotHTML
		data.MapHTML = mapHTML
		return renderPage(c, data)
	})

	log.Info().Int("port", *port).Msg("demo ui listening")
	if err := e.Start(fmt.Sprintf(":%d", *port)); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("demo ui failed")
	}
}

func renderPage(c echo.Context, data pageData) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return pageTmpl.Execute(c.Response(), data)
}
