package summary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetSummaryInput is the Huma input for the summary view.
type GetSummaryInput struct {
	Month string `query:"month" doc:"Month key YYYY-MM, defaults to the current UTC month"`
}

// SummaryResponseBody is the aggregation result. Balance, income, expense,
// and monthSpend are rounded to 2 decimal places; budget and progress carry
// raw precision.
type SummaryResponseBody struct {
	Balance    float64                   `json:"balance" doc:"All-time income minus expense"`
	Income     float64                   `json:"income" doc:"All-time income"`
	Expense    float64                   `json:"expense" doc:"All-time expense"`
	Month      string                    `json:"month" doc:"Month key the spend applies to"`
	MonthSpend float64                   `json:"monthSpend" doc:"Expense total within the month"`
	Budget     float64                   `json:"budget" doc:"Budget for the month, 0 when unset"`
	Progress   float64                   `json:"progress" doc:"monthSpend / budget, 0 when no budget"`
	Currency   string                    `json:"currency" doc:"Profile currency symbol"`
	Recent     []transaction.Transaction `json:"recent" doc:"Ten most recently dated transactions"`
}

// GetSummaryOutput is the Huma output for the summary view.
type GetSummaryOutput struct {
	Body SummaryResponseBody
}

// summaryComputer is the interface for computing summaries.
type summaryComputer interface {
	ComputeSummary(ctx context.Context, month string) (*service.Summary, error)
}

// Handler handles GET /summary.
type Handler struct {
	SummaryService summaryComputer
}

// NewHandler creates a new summary Handler.
func NewHandler(svc summaryComputer) *Handler {
	return &Handler{SummaryService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/summary",
		Summary:     "Get summary",
		Description: "Returns the all-time balance, the month's spend against its budget, and recent transactions.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("computeSummaryMs")
	}
	result, err := h.SummaryService.ComputeSummary(ctx, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonthFormat) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	recent := make([]transaction.Transaction, len(result.Recent))
	for i, tx := range result.Recent {
		recent[i] = transaction.FromService(tx)
	}

	return &GetSummaryOutput{
		Body: SummaryResponseBody{
			Balance:    result.Balance,
			Income:     result.Income,
			Expense:    result.Expense,
			Month:      result.Month,
			MonthSpend: result.MonthSpend,
			Budget:     result.Budget,
			Progress:   result.Progress,
			Currency:   result.Currency,
			Recent:     recent,
		},
	}, nil
}
