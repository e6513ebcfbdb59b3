package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/sixcities/internal/devapi"
	"github.com/five82/sixcities/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", devapi.DefaultAddr, "listen address")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := logging.Console(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := devapi.LoadFixtures()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sixcities-devapi: %v\n", err)
		return 1
	}

	srv := devapi.NewServer(*addr, store, logger)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sixcities-devapi: %v\n", err)
		return 1
	}
	return 0
}
