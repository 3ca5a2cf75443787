package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Title    string  `json:"title" required:"true" doc:"Short label for the transaction"`
	Amount   float64 `json:"amount" required:"true" doc:"Positive amount"`
	Type     string  `json:"type" required:"true" doc:"income or expense"`
	Category string  `json:"category" required:"true" doc:"Category from the active category set"`
	Date     string  `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now (UTC)"`
	Notes    string  `json:"notes,omitempty" doc:"Optional notes"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body struct {
		ID string `json:"id" doc:"Generated document ID"`
	}
}

// actionProcessor is the interface for enqueueing write actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Create transaction",
		Description: "Records a new income or expense transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	var date time.Time
	if input.Body.Date != "" {
		var err error
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	action := &actions.CreateTransaction{
		Title:    input.Body.Title,
		Amount:   input.Body.Amount,
		Type:     input.Body.Type,
		Category: input.Body.Category,
		Date:     date,
		Notes:    input.Body.Notes,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if service.IsValidationError(err) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	resp := &CreateTransactionOutput{}
	resp.Body.ID = action.ID
	return resp, nil
}
