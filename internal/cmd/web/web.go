// Package web wires the web command line: configuration, logging, and the
// serve and export subcommands.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	platformcmd "github.com/innovasmart/site/internal/platform/cmd"
	"github.com/innovasmart/site/internal/platform/logging"
	"github.com/innovasmart/site/internal/services/web"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"INNOVASMART_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	AssetBaseURL string `env:"INNOVASMART_WEB_ASSET_BASE_URL"`
	LogLevel     string `env:"INNOVASMART_WEB_LOG_LEVEL" envDefault:"info"`
	LogPretty    bool   `env:"INNOVASMART_WEB_LOG_PRETTY"`

	// LogWriter receives log output. Nil means stderr.
	LogWriter io.Writer
}

// ExportConfig holds the export subcommand options.
type ExportConfig struct {
	OutDir    string
	RevealAll bool
}

// ParseConfig loads the environment into a Config.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg Config) (zerolog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogPretty,
		Writer:        cfg.LogWriter,
		Service:       platformcmd.ServiceWeb,
	})
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, platformcmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// Export writes the static site and returns the written paths relative to
// the output directory.
func Export(ctx context.Context, cfg Config, export ExportConfig) ([]string, error) {
	if strings.TrimSpace(export.OutDir) == "" {
		return nil, errors.New("output directory is required")
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	written, err := web.Export(ctx, export.OutDir, web.ExportOptions{
		RevealAll: export.RevealAll,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("export site: %w", err)
	}
	logger.Info().Str("dir", export.OutDir).Int("files", len(written)).Msg("site exported")
	return written, nil
}

// NewRootCommand builds the command tree. Flag defaults come from cfg, so
// flags override the environment.
func NewRootCommand(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "web",
		Short:         "Serve or export the Innovasmart landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&cfg.LogPretty, "log-pretty", cfg.LogPretty, "Human-readable console logs")

	root.AddCommand(newServeCmd(&cfg), newExportCmd(&cfg))
	return root
}

func newServeCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.LogWriter == nil {
				cfg.LogWriter = cmd.ErrOrStderr()
			}
			return Run(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	cmd.Flags().StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for page assets")
	return cmd
}

func newExportCmd(cfg *Config) *cobra.Command {
	export := ExportConfig{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page and assets to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.LogWriter == nil {
				cfg.LogWriter = cmd.ErrOrStderr()
			}
			written, err := Export(cmd.Context(), *cfg, export)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range written {
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&export.OutDir, "out", "o", "", "Output directory")
	cmd.Flags().BoolVar(&export.RevealAll, "reveal-all", false, "Render scroll reveals in their final state")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// Main runs the command tree with args and returns the process exit error.
func Main(ctx context.Context, args []string) error {
	cfg, err := ParseConfig()
	if err != nil {
		return err
	}
	root := NewRootCommand(cfg)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
