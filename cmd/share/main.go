package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"locshare/internal/models"
	"locshare/pkg/backend"
	"locshare/pkg/geolocation"
	"locshare/pkg/graceful"
	"locshare/pkg/location"
	"locshare/pkg/page"
)

func main() {
	app := &cli.App{
		Name:  "share",
		Usage: "Share a location through a location page link from the terminal",
		Commands: []*cli.Command{
			runCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Load the page strings, capture a location and submit it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Page link, e.g. https://jobs.example.com/share?id=42",
				Required: true,
			},
			&cli.Float64Flag{
				Name:  "lat",
				Usage: "Latitude of the location",
			},
			&cli.Float64Flag{
				Name:  "lng",
				Usage: "Longitude of the location",
			},
			&cli.StringFlag{
				Name:  "place",
				Usage: "Resolve the location from a place name",
			},
			&cli.BoolFlag{
				Name:  "ip",
				Usage: "Approximate the location from the public IP address",
			},
			&cli.Float64Flag{
				Name:  "drag-lat",
				Usage: "Move the marker to this latitude before sharing",
			},
			&cli.Float64Flag{
				Name:  "drag-lng",
				Usage: "Move the marker to this longitude before sharing",
			},
			&cli.StringFlag{
				Name:  "nominatim-url",
				Usage: "Nominatim base URL used with --place",
				Value: location.DefaultBaseURL,
			},
			&cli.StringFlag{
				Name:  "ip-endpoint",
				Usage: "IP geolocation endpoint used with --ip",
				Value: geolocation.DefaultIPEndpoint,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug output",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	params, err := page.ParsePageURL(c.String("url"))
	if err != nil {
		return fmt.Errorf("invalid page url: %w", err)
	}
	if params.Backend == "" {
		return errors.New("page url has no host and no backend parameter")
	}

	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	locator, err := selectLocator(c)
	if err != nil {
		return err
	}

	client := backend.NewClient(params.Backend, backend.WithUserAgent("locshare-cli/1.0"))
	logger.Debug("Using backend", "url", client.BaseURL(), "userId", params.UserID)
	opts := []page.Option{
		page.WithView(newTerminalView(c.App.Writer)),
		page.WithLogger(logger),
	}
	if locator != nil {
		opts = append(opts, page.WithLocator(locator))
	}
	ctrl := page.New(params, client, client, opts...)

	ctx, cancel := graceful.Context(c.Context)
	defer cancel()

	var drag *models.LocationPoint
	if c.IsSet("drag-lat") || c.IsSet("drag-lng") {
		if !c.IsSet("drag-lat") || !c.IsSet("drag-lng") {
			return errors.New("--drag-lat and --drag-lng must be used together")
		}
		drag = &models.LocationPoint{Lat: c.Float64("drag-lat"), Lng: c.Float64("drag-lng")}
	}

	_, err = share(ctx, ctrl, drag)
	return err
}

// share runs the page flow: strings, the first capture, an optional marker
// adjustment, then the submission.
func share(ctx context.Context, ctrl *page.Controller, drag *models.LocationPoint) (page.SubmitResult, error) {
	// a failed load only means English text
	_ = ctrl.Init(ctx)
	if _, err := ctrl.Locate(ctx); err != nil {
		return page.SubmitResult{}, err
	}

	if drag != nil && !ctrl.DragMarker(*drag) {
		return page.SubmitResult{}, page.ErrNoMarker
	}
	return ctrl.Submit(ctx)
}

func selectLocator(c *cli.Context) (geolocation.Locator, error) {
	switch {
	case c.IsSet("lat") || c.IsSet("lng"):
		if !c.IsSet("lat") || !c.IsSet("lng") {
			return nil, errors.New("--lat and --lng must be used together")
		}
		return geolocation.NewStaticLocator(c.Float64("lat"), c.Float64("lng")), nil
	case c.String("place") != "":
		geocoder := location.NewClient(c.String("nominatim-url"), "locshare-cli/1.0")
		return geolocation.NewGeocodeLocator(geocoder, c.String("place")), nil
	case c.Bool("ip"):
		return geolocation.NewIPLocator(c.String("ip-endpoint")), nil
	default:
		// no position source; the page reports geolocation as unsupported
		return nil, nil
	}
}
