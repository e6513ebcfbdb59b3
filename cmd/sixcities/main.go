package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/sixcities/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	apiURL := flag.String("api", "", "API base URL (optional, overrides config)")
	city := flag.String("city", "", "city to open with (optional, defaults to the last one)")
	refreshSeconds := flag.Int("refresh", 0, "offers refresh interval in seconds (optional, defaults to 60s, negative disables)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:   *configPath,
		APIURL:       *apiURL,
		City:         *city,
		RefreshEvery: *refreshSeconds,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sixcities: %v\n", err)
		return 1
	}
	return 0
}
