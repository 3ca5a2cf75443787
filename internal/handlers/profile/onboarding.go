package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// OnboardingBody is the request body for completing onboarding.
type OnboardingBody struct {
	Currency   string   `json:"currency" required:"true" doc:"Currency symbol"`
	Target     float64  `json:"target" required:"true" doc:"Monthly budget target, positive"`
	Categories []string `json:"categories,omitempty" doc:"Replacement category list, kept only when non-empty"`
}

// OnboardingInput is the Huma input for completing onboarding.
type OnboardingInput struct {
	Body OnboardingBody
}

// OnboardingOutput is the Huma output for completing onboarding.
type OnboardingOutput struct {
	Body struct {
		Status string `json:"status" doc:"ok on success"`
	}
}

// actionProcessor is the interface for enqueueing write actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// OnboardingHandler handles POST /onboarding.
type OnboardingHandler struct {
	Operator actionProcessor
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(op actionProcessor) *OnboardingHandler {
	return &OnboardingHandler{Operator: op}
}

// Register registers the onboarding endpoint with the Huma API.
func (h *OnboardingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "complete-onboarding",
		Method:      http.MethodPost,
		Path:        "/onboarding",
		Summary:     "Complete onboarding",
		Description: "Sets the currency and onboarded flag, then sets the current month's budget.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *OnboardingHandler) handle(ctx context.Context, input *OnboardingInput) (*OnboardingOutput, error) {
	action := &actions.CompleteOnboarding{
		Currency:   input.Body.Currency,
		Target:     input.Body.Target,
		Categories: input.Body.Categories,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if service.IsValidationError(err) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to complete onboarding", err)
	}

	resp := &OnboardingOutput{}
	resp.Body.Status = service.StatusOK
	return resp, nil
}
