// Command xgen-console is the terminal client for the Xgen Cloud site:
// the rotating partner display plus the login/register flow.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/xgencloud/xgen-site/config"
	"github.com/xgencloud/xgen-site/internal/apiclient"
	"github.com/xgencloud/xgen-site/internal/console"
	"github.com/xgencloud/xgen-site/internal/console/carousel"
)

// defaultPartners is used when the backend catalog is unreachable, so
// the display always has content.
var defaultPartners = []carousel.Item{
	{Name: "Tata Tele", Description: "Strategic telecom infrastructure partner."},
	{Name: "Jio", Description: "Nationwide 4G/5G network partner."},
	{Name: "VI (Vodafone Idea)", Description: "Carrier partner for managed voice and data."},
	{Name: "Microsoft", Description: "Cloud platform partner for Azure workloads."},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; flags below override the environment.
	_ = godotenv.Load()

	var cfg config.ConsoleConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	backendURL := pflag.String("backend-url", "", "backend base URL (overrides XGEN_BACKEND_URL)")
	interval := pflag.Duration("interval", 0, "carousel rotation interval (overrides XGEN_CAROUSEL_INTERVAL)")
	pflag.Parse()

	if *backendURL != "" {
		cfg.BaseURL = *backendURL
	}
	if *interval > 0 {
		cfg.CarouselInterval = *interval
	}
	cfg.Sanitize()
	if cfg.BaseURL == "" {
		return fmt.Errorf("backend URL is required: set XGEN_BACKEND_URL or pass --backend-url")
	}

	client, err := apiclient.New(apiclient.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}

	model, err := console.New(console.Options{
		Client:           client,
		Items:            loadPartners(client, cfg.RequestTimeout),
		CarouselInterval: cfg.CarouselInterval,
		RequestTimeout:   cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// loadPartners fetches the live partner catalog, falling back to the
// built-in list when the backend is unreachable.
func loadPartners(client *apiclient.Client, timeout time.Duration) []carousel.Item {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	partners, err := client.Partners(ctx)
	if err != nil || len(partners) == 0 {
		return defaultPartners
	}

	items := make([]carousel.Item, len(partners))
	for i, p := range partners {
		items[i] = carousel.Item{Name: p.Name, Description: p.Description}
	}
	return items
}
