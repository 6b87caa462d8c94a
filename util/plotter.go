package util

import (
	"io"
	"log/slog"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"openmat-server/models"
	"openmat-server/models/venue"
)

// PlotVenues renders an HTML map of the venues that carry coordinates and
// returns how many were plotted. Venues without usable coordinates are left
// off the map.
func PlotVenues(w io.Writer, title string, venues []venue.Venue) (int, error) {
	points := make([]opts.GeoData, 0, len(venues))
	for _, v := range venues {
		c, err := models.ParseCoordinates(v.Coordinates)
		if err != nil {
			slog.Debug("Venue has no coordinates to plot", "component", "Plotter", "venue", v.Name)
			continue
		}
		points = append(points, opts.GeoData{Name: v.Name, Value: []float64{c.Lng, c.Lat, float64(len(v.Sessions))}})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return 0, err
	}
	return len(points), nil
}
