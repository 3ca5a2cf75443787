package transaction

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID       string  `json:"id" doc:"Opaque document ID"`
	Title    string  `json:"title" doc:"Short label for the transaction"`
	Amount   float64 `json:"amount" doc:"Positive amount"`
	Type     string  `json:"type" doc:"income or expense"`
	Category string  `json:"category" doc:"Transaction category"`
	Date     string  `json:"date" doc:"RFC3339 transaction date (UTC)"`
	Notes    string  `json:"notes,omitempty" doc:"Optional notes"`
}

// FromService converts a service transaction to the API model.
func FromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:       tx.ID,
		Title:    tx.Title,
		Amount:   tx.Amount.InexactFloat64(),
		Type:     tx.Type,
		Category: tx.Category,
		Date:     tx.Date.Format(time.RFC3339),
		Notes:    tx.Notes,
	}
}
