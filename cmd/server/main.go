package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ecovance/disclose/internal/api"
	"github.com/ecovance/disclose/internal/pkg/catalog"
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/ecovance/disclose/internal/pkg/logger"
	"github.com/ecovance/disclose/internal/pkg/store"
	"github.com/ecovance/disclose/internal/pkg/xpgx"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvPrefix("DISCLOSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "config file not found, relying on env: %s", err.Error())
	}

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 10),
			ctx,
		),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	moduleCatalog, err := catalog.Load(viper.GetString(constants.ViperCatalogPath))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(store.NewStore(pool), moduleCatalog)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(stopCtx)
	eg.Go(func() error {
		svc.Serve(viper.GetString(constants.ViperListenAddr))
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return svc.Shutdown(shutdownCtx)
	})

	logger.Fatal(ctx, eg.Wait())
}
