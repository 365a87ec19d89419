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

	"github.com/canonical/account-service/internal/cache"
	"github.com/canonical/account-service/internal/clock"
	"github.com/canonical/account-service/internal/config"
	"github.com/canonical/account-service/internal/coordinator"
	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/kratos"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/mail"
	"github.com/canonical/account-service/internal/monitoring/prometheus"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/account"
	"github.com/canonical/account-service/pkg/gc"
	"github.com/canonical/account-service/pkg/invitation"
	"github.com/canonical/account-service/pkg/subscription"
	"github.com/canonical/account-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
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
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("account-service", logger)
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

	var accountCache cache.AccountCacheInterface
	var cacheSession coordinator.CacheSessionInterface
	if specs.CacheEnabled {
		cacheConfig := cache.Config{
			Addr:       specs.CacheAddr,
			Password:   specs.CachePassword,
			DB:         specs.CacheDB,
			TTL:        specs.CacheTTL,
			UpdateOnly: specs.CacheUpdateOnly,
		}
		cacheClient, err := cache.NewClient(cacheConfig, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create cache client: %v", err)
		}
		defer cacheClient.Close()

		accountCache = cache.NewAccountCache(cacheClient, tracer, monitor, logger)
		cacheSession = cacheClient
		logger.Info("Cache is enabled")
	} else {
		accountCache = cache.NewNoopAccountCache()
		cacheSession = cache.NewNoopSession()
		logger.Info("Cache is disabled, every read goes to the database")
	}

	tx := coordinator.NewCoordinator(dbClient, cacheSession, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	smtpConfig := mail.SMTPConfig{
		Host:        specs.SMTPHost,
		Port:        specs.SMTPPort,
		Username:    specs.SMTPUsername,
		Password:    specs.SMTPPassword,
		SenderEmail: specs.SenderEmail,
		SenderName:  specs.SenderName,
	}
	emails := mail.NewEmails(
		mail.NewSMTPDispatcher(smtpConfig, tracer, monitor, logger),
		specs.AppName,
		tracer,
		monitor,
		logger,
	)

	subscriptionService := subscription.NewService(
		s,
		accountCache,
		tx,
		clock.NewClock(),
		specs.SubscriptionExpirationGracePeriod,
		specs.AccountCancellationGracePeriod,
		tracer,
		monitor,
		logger,
	)
	accountService := account.NewService(
		s,
		accountCache,
		tx,
		kratosClient,
		emails,
		subscriptionService,
		tracer,
		monitor,
		logger,
	)
	invitationService := invitation.NewService(
		s,
		accountService,
		tx,
		kratosClient,
		emails,
		clock.NewClock(),
		specs.InvitationLinkLifetime,
		specs.BaseURL,
		tracer,
		monitor,
		logger,
	)
	collector := gc.NewCollector(
		s,
		accountService,
		clock.NewClock(),
		specs.SubscriptionExpirationGracePeriod,
		specs.TrashGracePeriod,
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		account.NewAPI(accountService, logger),
		invitation.NewAPI(invitationService, logger),
		subscription.NewAPI(subscriptionService, logger),
		gc.NewAPI(collector, logger),
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
