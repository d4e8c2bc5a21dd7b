package main

import (
	"os"
	"time"

	"github.com/andresuchdata/replenish/internal/config"
	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/estimator"
	"github.com/andresuchdata/replenish/internal/repository/sqlstore"
	"github.com/andresuchdata/replenish/internal/service"
	"github.com/andresuchdata/replenish/pkg/logger"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "replenish",
		Usage: "Estimate reorder quantities for a batch of products",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-driver",
				Usage:   "Database driver (postgres, pgx or sqlite3)",
				EnvVars: []string{"DB_DRIVER"},
			},
			&cli.StringFlag{
				Name:    "db-url",
				Usage:   "Database connection string",
				EnvVars: []string{"DB_URL", "DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:  "order-date",
				Usage: "Order timestamp, read as UTC wall clock; defaults to now",
			},
			&cli.StringSliceFlag{
				Name:     "item",
				Aliases:  []string{"i"},
				Usage:    "Item as product_id:reference_days[:current_stock], repeatable",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "utc-offset",
				Usage:   "Business timezone offset in hours",
				EnvVars: []string{"ESTIMATOR_UTC_OFFSET_HOURS"},
				Value:   estimator.DefaultUTCOffsetHours,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: table or json",
				Value: "table",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "warn",
			},
		},
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("replenish failed")
	}
}

func run(c *cli.Context) error {
	logger.UseJSON(os.Stderr)
	logger.SetLevel(c.String("log-level"))

	format := c.String("output")
	if format != "table" && format != "json" {
		return cli.Exit("output must be table or json", 2)
	}

	items, err := parseItems(c.StringSlice("item"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	orderDate := time.Now().UTC()
	if raw := c.String("order-date"); raw != "" {
		if orderDate, err = domain.ParseOrderTimestamp(raw); err != nil {
			return cli.Exit(err.Error(), 2)
		}
	}

	cfg := config.Load()
	dbCfg := cfg.Database
	if c.IsSet("db-driver") {
		dbCfg.Driver = c.String("db-driver")
	}
	if c.IsSet("db-url") {
		dbCfg.URL = c.String("db-url")
	}

	db, err := sqlstore.NewDB(&dbCfg)
	if err != nil {
		return err
	}
	defer db.Close()

	est := estimator.New(
		sqlstore.NewProductRepository(db),
		sqlstore.NewArrivalRepository(db),
		sqlstore.NewSalesRepository(db),
		estimator.Options{
			Clock:               estimator.NewClock(c.Int("utc-offset")),
			DefaultLeadTimeDays: cfg.Estimator.DefaultLeadTimeDays,
		},
	)

	report, err := service.NewReorderService(est).CalculateOrder(c.Context, domain.OrderRequest{
		OrderDate: orderDate,
		Items:     items,
	})
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(c.App.Writer, report)
	}
	return writeTable(c.App.Writer, report)
}
