package budget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSetBudgetHandler(op).Register(api)
	return api
}

func TestHTTP_SetBudget_Success(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		set, ok := a.(*actions.SetBudget)
		return ok && set.Month == "2025-06" && set.Amount == 1200
	})).Return(nil)

	resp := newTestAPI(t, mockOp).Post("/budget", SetBudgetBody{
		Month:  "2025-06",
		Amount: 1200,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Status string `json:"status"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	mockOp.AssertExpectations(t)
}

func TestHTTP_SetBudget_OmittedMonthNormalizesToCurrent(t *testing.T) {
	currentMonth := time.Now().UTC().Format("2006-01")

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		set, ok := a.(*actions.SetBudget)
		return ok && set.Month == currentMonth
	})).Return(nil)

	resp := newTestAPI(t, mockOp).Post("/budget", SetBudgetBody{Amount: 500})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_SetBudget_InvalidMonth(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newTestAPI(t, mockOp).Post("/budget", SetBudgetBody{
		Month:  "June 2025",
		Amount: 1200,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_SetBudget_NonPositiveAmountMapsTo400(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(service.ErrNonPositiveAmount)

	resp := newTestAPI(t, mockOp).Post("/budget", SetBudgetBody{
		Month:  "2025-06",
		Amount: -5,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_SetBudget_StorageErrorMapsTo500(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	resp := newTestAPI(t, mockOp).Post("/budget", SetBudgetBody{
		Month:  "2025-06",
		Amount: 1200,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
