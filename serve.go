package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/logger"
	"github.com/Zachkp/folio/internal/route"
	"github.com/Zachkp/folio/internal/server"
)

type serveFlags struct {
	envFile  string
	port     int
	basePath string
	noTrack  bool
}

func (f *serveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.Flags().IntVarP(&f.port, "port", "p", 0, "listen port (overrides PORT)")
	cmd.Flags().StringVar(&f.basePath, "base-path", "", "mount prefix (overrides BASE_PATH)")
	cmd.Flags().BoolVar(&f.noTrack, "no-tracking", false, "disable visitor tracking")
}

// load reads the configuration and applies flags that were set explicitly.
func (f *serveFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("base-path") {
		cfg.BasePath = config.NormalizeBasePath(f.basePath)
	}
	if f.noTrack {
		cfg.Tracking.Enabled = false
	}
	return cfg, cfg.Validate()
}

func serveCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logCfg := logger.DefaultConfig()
			logCfg.Level = level
			logCfg.Format = cfg.LogFormat
			logger.Init(logCfg)
			log := logger.ForComponent("server")

			srv, err := server.New(cfg, log)
			if err != nil {
				return err
			}
			defer srv.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	flags.register(cmd)
	return cmd
}

func routesCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the resolved route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.noTrack = true
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			logCfg := logger.DefaultConfig()
			logCfg.Level = slog.LevelError
			srv, err := server.New(cfg, logger.New(logCfg))
			if err != nil {
				return err
			}
			defer srv.Close()
			return route.Print(cmd.OutOrStdout(), srv.Routes())
		},
	}
	flags.register(cmd)
	return cmd
}
