package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetProfileInput is the Huma input for fetching the profile.
type GetProfileInput struct{}

// GetProfileOutput is the Huma output for fetching the profile.
type GetProfileOutput struct {
	Body Profile
}

// profileGetter is the interface for reading the profile.
type profileGetter interface {
	GetProfile(ctx context.Context) (*service.Profile, error)
}

// GetProfileHandler handles GET /profile.
type GetProfileHandler struct {
	ProfileService profileGetter
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(svc profileGetter) *GetProfileHandler {
	return &GetProfileHandler{ProfileService: svc}
}

// Register registers the get profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get profile",
		Description: "Returns the singleton profile, creating it with defaults on first read.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, _ *GetProfileInput) (*GetProfileOutput, error) {
	result, err := h.ProfileService.GetProfile(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get profile", err)
	}

	return &GetProfileOutput{
		Body: Profile{
			Name:       result.Name,
			Currency:   result.Currency,
			DarkMode:   result.DarkMode,
			Categories: result.Categories,
			Onboarded:  result.Onboarded,
		},
	}, nil
}
