package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"openmat-server/config"
	"openmat-server/di"
	"openmat-server/models"
	"openmat-server/query"
	"openmat-server/util"
)

func main() {
	configPath := flag.String("config", config.CONFIG_FILE, "path to the YAML config file")
	syncOnly := flag.Bool("sync", false, "load every region once, print a summary and exit")
	plotRegion := flag.String("plot", "", "write an HTML map of the region's venues and exit")
	plotOut := flag.String("plot-out", "venues_map.html", "output file for -plot")
	printRegion := flag.String("print", "", "print the region's venues, next session first, and exit")
	asJSON := flag.Bool("json", false, "with -print, write the full venue list as JSON")
	seedRegion := flag.String("seed", "", "store the venues from -seed-file as the region's cache entry and exit")
	seedFile := flag.String("seed-file", "", "JSON venue list for -seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	util.InitLogging(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize", "err", err)
		os.Exit(1)
	}
	defer container.Close()

	switch {
	case *syncOnly:
		counts := container.RegionsRefresherService.RefreshAll(ctx)
		for _, region := range models.AllRegions {
			fmt.Printf("%s: %d venues\n", region, counts[region])
		}
		return
	case *plotRegion != "":
		if err := plot(ctx, container, *plotRegion, *plotOut); err != nil {
			slog.Error("Plot failed", "err", err)
			os.Exit(1)
		}
		return
	case *printRegion != "":
		region, err := models.ParseRegion(*printRegion)
		if err != nil {
			slog.Error("Print failed", "err", err)
			os.Exit(1)
		}
		venues := query.SortByNextOccurrence(container.ScheduleSyncService.GetGymData(ctx, region, false), time.Now())
		if *asJSON {
			if err := util.WriteVenuesJSON(os.Stdout, venues); err != nil {
				slog.Error("Print failed", "err", err)
				os.Exit(1)
			}
			return
		}
		util.PrintVenuesPartially(os.Stdout, venues)
		return
	case *seedRegion != "":
		if err := seed(ctx, container, *seedRegion, *seedFile); err != nil {
			slog.Error("Seed failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Sync.WarmUp {
		container.RegionsRefresherService.RefreshAll(ctx)
	}
	if interval := cfg.RefreshInterval(); interval > 0 {
		container.RegionsRefresherService.StartPeriodicJob(ctx, interval)
	}

	if err := container.OpenMatHttpServer.Start(ctx); err != nil {
		slog.Error("Server stopped", "err", err)
		os.Exit(1)
	}
}

func plot(ctx context.Context, container *di.Container, regionName, out string) error {
	region, err := models.ParseRegion(regionName)
	if err != nil {
		return err
	}
	venues := container.ScheduleSyncService.GetGymData(ctx, region, false)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", out, err)
	}
	defer f.Close()

	plotted, err := util.PlotVenues(f, fmt.Sprintf("%s open mats", region), venues)
	if err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	slog.Info("Venue map generated", "file", out, "venues", plotted)
	return nil
}

func seed(ctx context.Context, container *di.Container, regionName, file string) error {
	region, err := models.ParseRegion(regionName)
	if err != nil {
		return err
	}
	venues, err := util.ReadVenuesFromJSON(file)
	if err != nil {
		return err
	}
	if err := container.ScheduleCacheDao.Set(ctx, region, query.MergeByName(venues)); err != nil {
		return err
	}
	slog.Info("Seeded cache", "region", region, "venues", len(venues))
	return nil
}
