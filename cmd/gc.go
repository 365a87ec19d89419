// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

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
	"github.com/canonical/account-service/pkg/subscription"
)

// gcCmd runs a single garbage collection pass and exits. It is meant to be
// scheduled externally, for example as a Kubernetes CronJob.
var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Run a garbage collection pass",
	Long:  `Delete expired invitation links, flag expired subscriptions, remove due accounts and trashed projects`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := collect(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(gcCmd)
}

func collect(cmd *cobra.Command) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("account-service-gc", logger)
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

	// Account deletion goes through the account service, the cached views
	// of removed members have to be evicted along with the rows.
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
	} else {
		accountCache = cache.NewNoopAccountCache()
		cacheSession = cache.NewNoopSession()
	}

	tx := coordinator.NewCoordinator(dbClient, cacheSession, tracer, monitor, logger)
	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

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

	result, err := collector.Run(cmd.Context())
	if result != nil {
		logger.Infof(
			"garbage collection done: %d invitation links, %d subscriptions, %d accounts, %d projects",
			result.ExpiredInvitationLinks,
			result.ExpiredSubscriptions,
			result.DeletedAccounts,
			result.DeletedProjects,
		)
	}

	return err
}
