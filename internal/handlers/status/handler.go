package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RootOutput is the Huma output for the liveness message.
type RootOutput struct {
	Body struct {
		Message string `json:"message" doc:"Liveness message"`
	}
}

// TestResponseBody reports store connectivity and the collections present.
type TestResponseBody struct {
	Backend     string   `json:"backend" doc:"Backend status"`
	Database    string   `json:"database" doc:"Store connectivity"`
	Collections []string `json:"collections" doc:"Collection names in the database"`
}

// TestOutput is the Huma output for the store diagnostic.
type TestOutput struct {
	Body TestResponseBody
}

// storeDiagnostics is the interface for probing the persistence store.
type storeDiagnostics interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
}

// Handler handles GET / and GET /test.
type Handler struct {
	Storage storeDiagnostics
}

// NewHandler creates a new status Handler.
func NewHandler(store storeDiagnostics) *Handler {
	return &Handler{Storage: store}
}

// Register registers the liveness and diagnostic endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "liveness",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Liveness",
		Description: "Confirms the backend is running.",
		Tags:        []string{"Diagnostics"},
	}, h.handleRoot)

	huma.Register(api, huma.Operation{
		OperationID: "store-diagnostics",
		Method:      http.MethodGet,
		Path:        "/test",
		Summary:     "Store diagnostics",
		Description: "Verifies store connectivity and lists the collections present.",
		Tags:        []string{"Diagnostics"},
	}, h.handleTest)
}

func (h *Handler) handleRoot(_ context.Context, _ *struct{}) (*RootOutput, error) {
	resp := &RootOutput{}
	resp.Body.Message = "Finance Tracker Backend Running"
	return resp, nil
}

// handleTest reports store failures in the payload rather than as request
// errors, so the endpoint stays usable for debugging a broken store.
func (h *Handler) handleTest(ctx context.Context, _ *struct{}) (*TestOutput, error) {
	body := TestResponseBody{
		Backend:     "running",
		Database:    "connected",
		Collections: []string{},
	}

	if err := h.Storage.Ping(ctx); err != nil {
		body.Database = "unavailable: " + err.Error()
		return &TestOutput{Body: body}, nil
	}

	collections, err := h.Storage.ListCollections(ctx)
	if err != nil {
		body.Database = "connected, listing collections failed: " + err.Error()
		return &TestOutput{Body: body}, nil
	}
	body.Collections = collections

	return &TestOutput{Body: body}, nil
}
