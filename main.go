package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"bikeshare/config"
	"bikeshare/prompt"
	"bikeshare/services"
	"bikeshare/storage"
	"bikeshare/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("Config: source=%s | data dir=%s | cities=%v | page size=%d",
		cfg.DataSource, cfg.DataDir, cfg.CityNames(), cfg.PageSize)

	csvReader := storage.NewCSVReader(cfg.DataDir, cityFiles(cfg))

	if len(os.Args) > 1 && os.Args[1] == "import" {
		if err := runImport(ctx, cfg, csvReader, logger); err != nil {
			logger.Error("Import failed: %v", err)
			os.Exit(1)
		}
		return
	}

	var source storage.TripSource = csvReader
	if cfg.DataSource == config.SourcePostgres {
		pg, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pg.Close()
		source = pg
	}

	explorer := services.NewExplorer(
		source,
		services.NewCleaner(logger),
		services.NewInsightService(logger, cfg.StatsConcurrency),
		logger,
	)
	if err := runInteractive(ctx, cfg, explorer, os.Stdin, os.Stdout); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func runInteractive(ctx context.Context, cfg *config.Config, explorer *services.Explorer, in io.Reader, out io.Writer) error {
	p := prompt.New(in, out, cfg.CityNames())
	formatter := services.NewFormatter(out, true)

	for {
		sel, err := p.Selection()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		report, view, err := explorer.Explore(ctx, sel)
		if err != nil {
			fmt.Fprintf(out, "\nCould not load data for %s: %v\n", sel.City, err)
		} else {
			formatter.Print(report)

			if view.Len() > 0 && p.Confirm("Would you like to examine the raw data?") {
				pager := services.NewPager(view, cfg.PageSize)
				for {
					w, ok := pager.Next()
					if !ok {
						fmt.Fprintln(out, "No more records.")
						break
					}
					formatter.PrintWindow(w)
					if w.End >= w.Total || !p.Confirm("Would you like to keep displaying raw data?") {
						break
					}
				}
			}
		}

		if ctx.Err() != nil || !p.Confirm("Would you like to restart?") {
			return nil
		}
	}
}

func runImport(ctx context.Context, cfg *config.Config, reader *storage.CSVReader, logger *utils.Logger) error {
	pg, err := openPostgres(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	for _, city := range cfg.Cities {
		ds, err := reader.Load(ctx, city.Name)
		if err != nil {
			return err
		}
		if err := pg.Import(ctx, ds); err != nil {
			return err
		}
		logger.Info("Imported %d trips for %s", len(ds.Rows), city.Name)
	}
	return nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *utils.Logger) (*storage.PostgresStore, error) {
	return storage.NewPostgresStore(ctx, cfg.DSN(), &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	})
}

func cityFiles(cfg *config.Config) map[string]string {
	files := make(map[string]string, len(cfg.Cities))
	for _, c := range cfg.Cities {
		files[c.Name] = c.File
	}
	return files
}
