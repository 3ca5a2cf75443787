package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

const defaultListLimit = 100

// TransactionService handles transaction queries.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns transactions matching the filter, most recent
// first. A nil filter returns the most recent transactions up to the default
// limit. An empty result is a valid outcome, not an error.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]Transaction, error) {
	limit := defaultListLimit
	storageFilter := &mongoconfig.TransactionFilter{}
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		storageFilter.StartDate = filter.StartDate
		storageFilter.EndDate = filter.EndDate
		storageFilter.Category = filter.Category
		storageFilter.Type = filter.Type
		storageFilter.MinAmount = filter.MinAmount
		storageFilter.MaxAmount = filter.MaxAmount
	}
	storageFilter.Limit = int64(limit)

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}

func transactionFromStorage(row *mongoconfig.Transaction) Transaction {
	return Transaction{
		ID:       row.ID.Hex(),
		Title:    row.Title,
		Amount:   decimal.NewFromFloat(row.Amount),
		Type:     row.Type,
		Category: row.Category,
		Date:     row.Date,
		Notes:    row.Notes,
	}
}

// ValidateNewTransaction checks the domain rules for a transaction about to
// be recorded: positive amount, known type, category present in the active
// category set.
func ValidateNewTransaction(amount float64, txType, category string, activeCategories []string) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if txType != TypeIncome && txType != TypeExpense {
		return ErrInvalidTransactionType
	}
	for _, c := range activeCategories {
		if c == category {
			return nil
		}
	}
	return ErrUnknownCategory
}
