package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/sixcities/internal/config"
	"github.com/five82/sixcities/internal/flows"
	"github.com/five82/sixcities/internal/logging"
	"github.com/five82/sixcities/internal/prefs"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
	"github.com/five82/sixcities/internal/ui"
)

// Options configure the client application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/sixcities/prefs.toml
	APIURL       string // overrides the configured API URL
	City         string // overrides the remembered city
	RefreshEvery int    // seconds; zero uses default, negative disables
}

// Run boots the client TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	logger, closeLogs, err := logging.Setup(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLogs() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("load preferences failed", "path", prefsPath, "error", err)
	}
	if opts.City != "" {
		city, ok := sixcities.LookupCity(opts.City)
		if !ok {
			return fmt.Errorf("unknown city %q (choose from %s)", opts.City, cityNames())
		}
		userPrefs.City = city.Name
	}

	client, err := sixcities.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	client.SetToken(userPrefs.Token)

	store := state.NewStore(initialState(userPrefs))
	store.Logger = logger.With("component", "store")

	runner := flows.NewRunner(cfg.MaxInflight, logger.With("component", "runner"))
	defer runner.Stop()
	fl := flows.New(client, store, logger.With("component", "flows"))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var results chan flows.Result
	interval := defaultRefreshInterval
	if opts.RefreshEvery > 0 {
		interval = time.Duration(opts.RefreshEvery) * time.Second
	}
	if opts.RefreshEvery >= 0 {
		results = make(chan flows.Result, 1)
		StartRefresher(ctx, runner, fl, interval, results, logger.With("component", "refresher"))
	}

	logger.Info("sixcities starting",
		"api", client.BaseURL(),
		"city", userPrefs.City,
		"refresh", interval,
		"signed_in", userPrefs.Token != "",
	)

	return ui.Run(ui.Options{
		Context:     ctx,
		Store:       store,
		Flows:       fl,
		Runner:      runner,
		Results:     results,
		Prefs:       userPrefs,
		PrefsPath:   prefsPath,
		LogFile:     cfg.LogFile,
		Logger:      logger.With("component", "ui"),
		FlowTimeout: 3 * cfg.RequestTimeout,
	})
}

// initialState applies the remembered city and sort order to the startup
// state. Unknown values keep the defaults.
func initialState(p prefs.Prefs) state.State {
	s := state.Initial()
	if city, ok := sixcities.LookupCity(p.City); ok {
		s.Client.CurrentCity = city
	}
	if mode, err := state.ParseSortMode(p.Sort); err == nil {
		s.Client.CurrentSorting = mode
	}
	return s
}

func cityNames() string {
	cities := sixcities.Cities()
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
