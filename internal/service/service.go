package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Summary     *SummaryService
	Transaction *TransactionService
	Profile     *ProfileService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Summary:     NewSummaryService(store),
		Transaction: NewTransactionService(store),
		Profile:     NewProfileService(store),
	}
}
