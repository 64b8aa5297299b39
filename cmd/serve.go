// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/crm-gateway/internal/config"
	"github.com/canonical/crm-gateway/internal/crm"
	"github.com/canonical/crm-gateway/internal/db"
	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring/prometheus"
	"github.com/canonical/crm-gateway/internal/oauthstate"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/vault"
	"github.com/canonical/crm-gateway/pkg/authentication"
	"github.com/canonical/crm-gateway/pkg/connect"
	"github.com/canonical/crm-gateway/pkg/tenant"
	"github.com/canonical/crm-gateway/pkg/web"
	"github.com/canonical/crm-gateway/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("crm-gateway", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	credentialVault, err := vault.NewVault(specs.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize credential vault: %v", err)
	}

	crmClient := crm.NewClient(
		crm.Config{
			ClientID:        specs.CRMClientID,
			ClientSecret:    specs.CRMClientSecret,
			AuthURL:         specs.CRMAuthURL,
			TokenURL:        specs.CRMTokenURL,
			RedirectURL:     fmt.Sprintf("%s/api/v0/connect/callback", specs.RedirectURIBase),
			ExchangeTimeout: specs.CRMExchangeTimeout,
			MaxRetries:      specs.CRMExchangeRetries,
		},
		tracer,
		monitor,
		logger,
	)

	stateStore := oauthstate.NewStore(specs.OAuthStateTTL)

	authenticator := authentication.NewAuthenticator(
		s,
		credentialVault,
		crmClient,
		specs.APIKeySalt,
		tracer,
		monitor,
		logger,
	)

	tenantService := tenant.NewService(
		s,
		authenticator,
		credentialVault,
		dbClient,
		tracer,
		monitor,
		logger,
	)

	connectService := connect.NewService(
		stateStore,
		s,
		credentialVault,
		crmClient,
		dbClient,
		tracer,
		monitor,
		logger,
	)

	webhookService := webhooks.NewService(
		s,
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		authenticator,
		tenantService,
		connectService,
		webhookService,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
