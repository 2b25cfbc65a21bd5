package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	staysync "github.com/mahadevpnair10/STAYSYNC"
	"github.com/mahadevpnair10/STAYSYNC/catalog"
	"github.com/mahadevpnair10/STAYSYNC/dataset"
	"github.com/mahadevpnair10/STAYSYNC/feature"
	"github.com/mahadevpnair10/STAYSYNC/holiday"
	"github.com/mahadevpnair10/STAYSYNC/internal/metrics"
	"github.com/mahadevpnair10/STAYSYNC/internal/profiles"
	"github.com/mahadevpnair10/STAYSYNC/models"
)

func fullSchema() feature.Schema {
	schema := feature.Schema{
		feature.ColStarRating,
		feature.ColDistance,
		feature.ColDayOfWeekSin,
		feature.ColDayOfYearSin,
		feature.ColMonthSin,
		feature.ColYearScaled,
		feature.ColIsWeekend,
		feature.ColIsHoliday,
	}
	for _, lag := range feature.Lags {
		schema = append(schema, feature.LagColumn(lag))
	}
	for _, w := range feature.RollingWindows {
		schema = append(schema, feature.RollingMeanColumn(w), feature.RollingStdColumn(w))
	}
	schema = append(schema, feature.ColDailyChange)
	for slot := 0; slot < feature.PropTypeSlots; slot++ {
		schema = append(schema, feature.PropTypeColumn(slot))
	}
	return schema
}

func testForecaster(t *testing.T) *staysync.Forecaster {
	t.Helper()

	rows := make([]dataset.Row, 0, 60)
	last := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		rows = append(rows, dataset.Row{
			Date:               last.AddDate(0, 0, i-59),
			StarRating:         4,
			PropertyType:       9,
			DistanceFromCenter: 2.5,
			OccupiedRooms:      20 + float64(i%5),
		})
	}
	store, err := dataset.NewStore(rows)
	require.Nil(t, err)

	cat, err := catalog.New([]catalog.Property{
		{
			Name:               "Seaside Inn",
			ID:                 "P1",
			StarRating:         4,
			PropertyType:       "Hotel",
			DistanceFromCenter: 2.5,
			Latitude:           11.0168,
			Longitude:          76.9558,
		},
		{
			Name:               "Ghost Villa",
			ID:                 "P2",
			StarRating:         5,
			PropertyType:       "Villa",
			DistanceFromCenter: 9.9,
		},
	})
	require.Nil(t, err)

	schema := fullSchema()
	f, err := staysync.New(staysync.Dependencies{
		Store:    store,
		Holidays: holiday.NewSet(),
		Scorer:   &models.LinearScorer{Intercept: 10, Coef: make([]float64, len(schema))},
		Scaler:   models.IdentityScaler{},
		Schema:   schema,
		Catalog:  cat,
	})
	require.Nil(t, err)
	return f
}

func testHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	f := testForecaster(t)
	m := metrics.New(prometheus.NewRegistry())
	svc := profiles.NewService(profiles.NewClient("", "", time.Second), f.Catalog(), zerolog.Nop())
	h := NewHandler(f, svc, m, zerolog.Nop(), false)

	e := echo.New()
	h.RegisterRoutes(e)
	return h, e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	_, e := testHandler(t)
	rec := doJSON(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, Version, body["version"])
}

func TestHealth(t *testing.T) {
	_, e := testHandler(t)
	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["supabase_configured"])
}

func TestProperties(t *testing.T) {
	_, e := testHandler(t)
	rec := doJSON(e, http.MethodGet, "/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, []string{"Seaside Inn", "Ghost Villa"}, names)
}

func TestPropertyDetails(t *testing.T) {
	_, e := testHandler(t)
	rec := doJSON(e, http.MethodGet, "/properties/details", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var props []catalog.Property
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &props))
	require.Len(t, props, 2)
	assert.Equal(t, "Seaside Inn", props[0].Name)
	assert.Equal(t, 4, props[0].StarRating)
}

func TestForecast(t *testing.T) {
	_, e := testHandler(t)
	rec := doJSON(e, http.MethodPost, "/forecast", `{"property_name":"Seaside Inn","adr":100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ForecastResponse
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Greater(t, resp.TotalRoomNights, 0)
	assert.Equal(t, resp.TotalRoomNights*100, resp.TotalRevenue)
	assert.Contains(t, resp.PlotHTML, "Seaside Inn")
	assert.Contains(t, resp.MapHTML, "leaflet")
}

func TestForecastRejections(t *testing.T) {
	testData := map[string]struct {
		body     string
		expCode  int
		expInMsg string
	}{
		"malformed body": {
			body:    `{"property_name":`,
			expCode: http.StatusBadRequest,
		},
		"missing adr": {
			body:     `{"property_name":"Seaside Inn"}`,
			expCode:  http.StatusBadRequest,
			expInMsg: "ADR",
		},
		"negative adr": {
			body:     `{"property_name":"Seaside Inn","adr":-1}`,
			expCode:  http.StatusBadRequest,
			expInMsg: "ADR",
		},
		"unknown property": {
			body:     `{"property_name":"Nowhere Hotel","adr":100}`,
			expCode:  http.StatusNotFound,
			expInMsg: "Property Name not found.",
		},
		"no segment history": {
			body:     `{"property_name":"Ghost Villa","adr":100}`,
			expCode:  http.StatusUnprocessableEntity,
			expInMsg: "no historical data",
		},
	}

	_, e := testHandler(t)
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/forecast", td.body)
			require.Equal(t, td.expCode, rec.Code, rec.Body.String())

			var resp struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			if td.expInMsg != "" {
				assert.Contains(t, resp.Message, td.expInMsg)
			}
		})
	}
}
