package main

import (
	"context"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const numOperatorWorkers = 4

func main() {
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	// Idempotent init so steady-state profile reads never have to create it.
	if _, err := dbStorage.Profiles.EnsureDefault(context.Background(), service.DefaultProfileDocument()); err != nil {
		logger.WithError(err).Warn("profile init skipped, store not reachable yet")
	}

	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, numOperatorWorkers)
	delegator.Start()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
			Storage:  dbStorage,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
