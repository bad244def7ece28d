// cmd/admin is the terminal client for the admin dashboard auth flows.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	zlog "github.com/rs/zerolog/log"

	"github.com/digicard/admin-auth/internal/client/cli"
	"github.com/digicard/admin-auth/internal/logger"
)

func main() {
	logger.Init()

	serverURL := flag.String("server", envOr("ADMIN_SERVER_URL", "http://localhost:8080"), "base URL of the admin auth service")
	dataDir := flag.String("data-dir", envOr("ADMIN_DATA_DIR", defaultDataDir()), "directory for client-local state")
	flag.Parse()

	app, err := cli.NewApp(cli.Config{ServerURL: *serverURL, DataDir: *dataDir}, zlog.Logger, os.Stdin, os.Stdout)
	if err != nil {
		zlog.Error().Err(err).Msg("client init failed")
		os.Exit(1)
	}

	os.Exit(app.Run(context.Background(), flag.Args()))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".admin-auth"
	}
	return filepath.Join(home, ".admin-auth")
}
