package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateProfileBody is the request body for a partial profile update. Omitted
// fields are left unchanged.
type UpdateProfileBody struct {
	Name       *string  `json:"name,omitempty" doc:"Display name"`
	Currency   *string  `json:"currency,omitempty" doc:"Currency symbol"`
	DarkMode   *bool    `json:"darkMode,omitempty" doc:"Preferred dark mode"`
	Categories []string `json:"categories,omitempty" doc:"Replacement category list"`
	Onboarded  *bool    `json:"onboarded,omitempty" doc:"Onboarding completed flag"`
}

// UpdateProfileInput is the Huma input for updating the profile.
type UpdateProfileInput struct {
	Body UpdateProfileBody
}

// UpdateProfileOutput is the Huma output for updating the profile.
type UpdateProfileOutput struct {
	Body struct {
		Status string `json:"status" doc:"ok, or no_changes when nothing was provided"`
	}
}

// profileUpdater is the interface for merging partial profile updates.
type profileUpdater interface {
	UpdateProfile(ctx context.Context, update *service.ProfileUpdate) (string, error)
}

// UpdateProfileHandler handles POST /profile.
type UpdateProfileHandler struct {
	ProfileService profileUpdater
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(svc profileUpdater) *UpdateProfileHandler {
	return &UpdateProfileHandler{ProfileService: svc}
}

// Register registers the update profile endpoint with the Huma API.
func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPost,
		Path:        "/profile",
		Summary:     "Update profile",
		Description: "Merges the provided fields into the singleton profile.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	status, err := h.ProfileService.UpdateProfile(ctx, &service.ProfileUpdate{
		Name:       input.Body.Name,
		Currency:   input.Body.Currency,
		DarkMode:   input.Body.DarkMode,
		Categories: input.Body.Categories,
		Onboarded:  input.Body.Onboarded,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update profile", err)
	}

	resp := &UpdateProfileOutput{}
	resp.Body.Status = status
	return resp, nil
}
