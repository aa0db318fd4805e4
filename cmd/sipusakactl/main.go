// Package main is sipusakactl, a terminal client for the dashboard's exports and counts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	applogger "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/logger"
)

const tokenEnv = "SIPUSAKA_TOKEN"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options flags shared by every subcommand
type options struct {
	configPath string
	token      string
	baseURL    string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "sipusakactl",
		Short:         "Export Sipusaka tables and print dashboard counts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "upstream bearer token (default $"+tokenEnv+")")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "upstream base URL (overrides config)")

	cmd.AddCommand(exportCmd(opts), countsCmd(opts))
	return cmd
}

// services builds the service layer on a gateway that always sends the given token.
// Sessions are not needed from a terminal, so no store is wired.
func (o *options) services() (*service.Service, error) {
	cfg, err := config.Read(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		cfg.Upstream.BaseURL = o.baseURL
	}

	token := o.token
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	if token == "" {
		return nil, fmt.Errorf("no token: pass --token or set %s", tokenEnv)
	}

	logger, err := applogger.NewLogger(&config.LogConfig{Level: "warn", Format: "console"})
	if err != nil {
		logger = zap.NewNop()
	}

	gw, err := gateway.New(cfg.Upstream.BaseURL, gateway.StaticToken(token),
		gateway.WithTimeout(cfg.Upstream.Timeout),
		gateway.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return service.NewService(cfg, repository.NewRepository(gw), nil, nil, nil, logger)
}
