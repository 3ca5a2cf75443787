package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/bootstrap"
	"github.com/carson-networks/finance-tracker/internal/handlers/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/profile"
	"github.com/carson-networks/finance-tracker/internal/handlers/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/summary"
	"github.com/carson-networks/finance-tracker/internal/handlers/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Storage  *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler(r.Storage).Register(humaAPI)
	bootstrap.NewHandler(r.Operator).Register(humaAPI)
	profile.NewGetProfileHandler(r.Service.Profile).Register(humaAPI)
	profile.NewUpdateProfileHandler(r.Service.Profile).Register(humaAPI)
	profile.NewOnboardingHandler(r.Operator).Register(humaAPI)
	summary.NewHandler(r.Service.Summary).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	budget.NewSetBudgetHandler(r.Operator).Register(humaAPI)
	category.NewHandler(r.Service.Profile).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           corsMiddleware(mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// corsMiddleware allows any origin; the backend is single-user and unauthenticated.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
