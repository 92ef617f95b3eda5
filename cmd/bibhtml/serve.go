package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fcbond/bibhtml/internal/bibtex"
	"github.com/fcbond/bibhtml/internal/render"
	"github.com/fcbond/bibhtml/internal/site"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serveConfig string

func init() {
	serveCmd.Flags().StringVar(&serveConfig, "config", "site.yml", "Path to site configuration")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website",
	Long: `Serve the website over HTTP.

The bibliography is loaded and rendered once at startup; changed .bib
files take effect only after a restart. Startup fails outright if any
bibliography file is unreadable or malformed.

Examples:
  bibhtml serve
  bibhtml serve --config site.yml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env if present for local overrides.
	_ = godotenv.Load()

	cfg, err := site.LoadConfig(serveConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitConfigError)
	}
	if listen := os.Getenv("BIBHTML_LISTEN"); listen != "" {
		cfg.Listen = listen
	}

	entries, err := bibtex.Load(cfg.BibFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitDataError)
	}
	fmt.Printf("Loaded %d entries from %d bib files.\n", len(entries), len(cfg.BibFiles))

	bibHTML := render.Bibliography(entries, cfg.AuthorFilter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := site.NewServer(cfg, bibHTML, nil)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
	return nil
}
