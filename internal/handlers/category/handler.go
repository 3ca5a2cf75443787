package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []string
}

// categoryLister is the interface for reading the active category list.
type categoryLister interface {
	ActiveCategoryList(ctx context.Context) ([]string, error)
}

// Handler handles GET /categories.
type Handler struct {
	ProfileService categoryLister
}

// NewHandler creates a new category Handler.
func NewHandler(svc categoryLister) *Handler {
	return &Handler{ProfileService: svc}
}

// Register registers the categories endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns the profile's category list, or the defaults when no profile exists.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := h.ProfileService.ActiveCategoryList(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}
	return &ListCategoriesOutput{Body: categories}, nil
}
