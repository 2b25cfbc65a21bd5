package staysync

import (
	"bytes"
	"html/template"
	"io"
	"os"

	"github.com/mahadevpnair10/STAYSYNC/catalog"
)

// locationMapTmpl is a self-contained Leaflet document centered on the
// property with a single tooltip marker.
var locationMapTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.Latitude}}, {{.Longitude}}], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
	attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
L.marker([{{.Latitude}}, {{.Longitude}}]).addTo(map).bindTooltip({{.Name}});
</script>
</body>
</html>
`))

// DefaultMapZoom is a street-level zoom.
const DefaultMapZoom = 15

type locationMapData struct {
	Name      string
	Latitude  float64
	Longitude float64
	Zoom      int
}

// RenderLocationMap writes a standalone HTML map document for the property's
// coordinates. Presentation only; nothing feeds back into forecasting.
func RenderLocationMap(p catalog.Property, w io.Writer) error {
	return locationMapTmpl.Execute(w, locationMapData{
		Name:      p.Name,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Zoom:      DefaultMapZoom,
	})
}

// LocationMapHTML returns the property map document as an HTML string.
func LocationMapHTML(p catalog.Property) (string, error) {
	var buf bytes.Buffer
	if err := RenderLocationMap(p, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// LocationMapFile renders the property map document to the given path.
func LocationMapFile(p catalog.Property, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return RenderLocationMap(p, file)
}
