package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// SetBudgetBody is the request body for setting a month's budget.
type SetBudgetBody struct {
	Month  string  `json:"month,omitempty" doc:"Month key YYYY-MM, defaults to the current UTC month"`
	Amount float64 `json:"amount" required:"true" doc:"Positive budget amount"`
}

// SetBudgetInput is the Huma input for setting a budget.
type SetBudgetInput struct {
	Body SetBudgetBody
}

// SetBudgetOutput is the Huma output for setting a budget.
type SetBudgetOutput struct {
	Body struct {
		Status string `json:"status" doc:"ok on success"`
	}
}

// actionProcessor is the interface for enqueueing write actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// SetBudgetHandler handles POST /budget.
type SetBudgetHandler struct {
	Operator actionProcessor
}

// NewSetBudgetHandler creates a new SetBudgetHandler.
func NewSetBudgetHandler(op actionProcessor) *SetBudgetHandler {
	return &SetBudgetHandler{Operator: op}
}

// Register registers the set budget endpoint with the Huma API.
func (h *SetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-budget",
		Method:      http.MethodPost,
		Path:        "/budget",
		Summary:     "Set budget",
		Description: "Creates or fully replaces the budget for a month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *SetBudgetHandler) handle(ctx context.Context, input *SetBudgetInput) (*SetBudgetOutput, error) {
	month, err := service.NormalizeMonth(input.Body.Month)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error())
	}

	action := &actions.SetBudget{
		Month:  month,
		Amount: input.Body.Amount,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if service.IsValidationError(err) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to set budget", err)
	}

	resp := &SetBudgetOutput{}
	resp.Body.Status = service.StatusOK
	return resp, nil
}
