package bootstrap

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// BootstrapInput is the Huma input for seeding sample data. The request body
// is ignored.
type BootstrapInput struct{}

// BootstrapOutput is the Huma output for seeding sample data.
type BootstrapOutput struct {
	Body struct {
		Status string `json:"status" doc:"ok on success"`
	}
}

// actionProcessor is the interface for enqueueing write actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Handler handles POST /bootstrap.
type Handler struct {
	Operator actionProcessor
}

// NewHandler creates a new bootstrap Handler.
func NewHandler(op actionProcessor) *Handler {
	return &Handler{Operator: op}
}

// Register registers the bootstrap endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bootstrap-sample-data",
		Method:      http.MethodPost,
		Path:        "/bootstrap",
		Summary:     "Seed sample data",
		Description: "Inserts sample transactions, a budget, and a profile. No-op when data already exists.",
		Tags:        []string{"Diagnostics"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *BootstrapInput) (*BootstrapOutput, error) {
	if err := h.Operator.Process(ctx, &actions.BootstrapSampleData{}); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to bootstrap sample data", err)
	}

	resp := &BootstrapOutput{}
	resp.Body.Status = service.StatusOK
	return resp, nil
}
