package transaction

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const dateLayout = "2006-01-02"

// ListTransactionsInput is the Huma input for listing transactions. All
// filters are optional and combine with logical AND.
type ListTransactionsInput struct {
	StartDate string `query:"startDate" doc:"Inclusive lower date bound (YYYY-MM-DD)"`
	EndDate   string `query:"endDate" doc:"Exclusive upper date bound (YYYY-MM-DD)"`
	Category  string `query:"category" doc:"Exact category match"`
	Type      string `query:"type" doc:"Exact type match: income or expense"`
	MinAmount string `query:"minAmount" doc:"Inclusive lower amount bound"`
	MaxAmount string `query:"maxAmount" doc:"Inclusive upper amount bound"`
	Limit     int    `query:"limit" minimum:"1" maximum:"1000" doc:"Max results, default 100"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns transactions matching the filters, most recent first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput translates the query parameters into a service
// filter. Filters left empty are omitted entirely rather than matched
// against zero values.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionFilter, error) {
	filter := &service.TransactionFilter{Limit: input.Limit}

	if input.StartDate != "" {
		startDate, err := time.Parse(dateLayout, input.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, service.ErrInvalidDateFormat.Error(), err)
		}
		filter.StartDate = &startDate
	}
	if input.EndDate != "" {
		endDate, err := time.Parse(dateLayout, input.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, service.ErrInvalidDateFormat.Error(), err)
		}
		filter.EndDate = &endDate
	}

	if input.Category != "" {
		category := input.Category
		filter.Category = &category
	}
	if input.Type != "" {
		if input.Type != service.TypeIncome && input.Type != service.TypeExpense {
			return nil, huma.NewError(http.StatusBadRequest, service.ErrInvalidTransactionType.Error())
		}
		txType := input.Type
		filter.Type = &txType
	}

	if input.MinAmount != "" {
		minAmount, err := strconv.ParseFloat(input.MinAmount, 64)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid minAmount", err)
		}
		filter.MinAmount = &minAmount
	}
	if input.MaxAmount != "" {
		maxAmount, err := strconv.ParseFloat(input.MaxAmount, 64)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid maxAmount", err)
		}
		filter.MaxAmount = &maxAmount
	}

	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := &ListTransactionsOutput{
		Body: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Body[i] = FromService(tx)
	}
	return resp, nil
}
