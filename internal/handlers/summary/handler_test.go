package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockSummaryService struct {
	mock.Mock
}

func (m *mockSummaryService) ComputeSummary(ctx context.Context, month string) (*service.Summary, error) {
	args := m.Called(ctx, month)
	result, _ := args.Get(0).(*service.Summary)
	return result, args.Error(1)
}

func newTestAPI(t *testing.T, svc summaryComputer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_GetSummary_Success(t *testing.T) {
	date := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	mockSvc := new(mockSummaryService)
	mockSvc.On("ComputeSummary", mock.Anything, "2025-06").Return(&service.Summary{
		Balance:    1757.50,
		Income:     1800,
		Expense:    42.50,
		Month:      "2025-06",
		MonthSpend: 42.50,
		Budget:     1200,
		Progress:   42.50 / 1200.0,
		Currency:   "$",
		Recent: []service.Transaction{
			{
				ID:       "685faa1b2c3d4e5f60718293",
				Title:    "Groceries",
				Amount:   decimal.NewFromFloat(42.5),
				Type:     service.TypeExpense,
				Category: "Food",
				Date:     date,
			},
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/summary?month=2025-06")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1757.50, body.Balance)
	assert.Equal(t, 1800.0, body.Income)
	assert.Equal(t, 42.50, body.Expense)
	assert.Equal(t, "2025-06", body.Month)
	assert.Equal(t, 42.50, body.MonthSpend)
	assert.Equal(t, 1200.0, body.Budget)
	assert.Equal(t, 42.50/1200.0, body.Progress)
	assert.Equal(t, "$", body.Currency)
	assert.Len(t, body.Recent, 1)
	assert.Equal(t, "Groceries", body.Recent[0].Title)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetSummary_NoMonthParamPassesEmptyString(t *testing.T) {
	mockSvc := new(mockSummaryService)
	mockSvc.On("ComputeSummary", mock.Anything, "").Return(&service.Summary{
		Month:    time.Now().UTC().Format("2006-01"),
		Currency: "$",
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetSummary_InvalidMonth(t *testing.T) {
	mockSvc := new(mockSummaryService)
	mockSvc.On("ComputeSummary", mock.Anything, "2025-13").Return(nil, service.ErrInvalidMonthFormat)

	resp := newTestAPI(t, mockSvc).Get("/summary?month=2025-13")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_GetSummary_ServiceError(t *testing.T) {
	mockSvc := new(mockSummaryService)
	mockSvc.On("ComputeSummary", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
