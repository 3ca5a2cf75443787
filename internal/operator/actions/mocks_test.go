package actions

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

type mockTransactionCollection struct {
	mock.Mock
}

func (m *mockTransactionCollection) Insert(ctx context.Context, create *mongoconfig.TransactionCreate) (string, error) {
	args := m.Called(ctx, create)
	return args.String(0), args.Error(1)
}

func (m *mockTransactionCollection) List(ctx context.Context, filter *mongoconfig.TransactionFilter) ([]*mongoconfig.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*mongoconfig.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionCollection) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockBudgetCollection struct {
	mock.Mock
}

func (m *mockBudgetCollection) FindByMonth(ctx context.Context, month string) (*mongoconfig.Budget, error) {
	args := m.Called(ctx, month)
	budget, _ := args.Get(0).(*mongoconfig.Budget)
	return budget, args.Error(1)
}

func (m *mockBudgetCollection) Upsert(ctx context.Context, month string, amount float64, updatedAt time.Time) error {
	args := m.Called(ctx, month, amount, updatedAt)
	return args.Error(0)
}

func (m *mockBudgetCollection) CountByMonth(ctx context.Context, month string) (int64, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(int64), args.Error(1)
}

type mockProfileCollection struct {
	mock.Mock
}

func (m *mockProfileCollection) Find(ctx context.Context) (*mongoconfig.Profile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*mongoconfig.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileCollection) EnsureDefault(ctx context.Context, defaults *mongoconfig.Profile) (*mongoconfig.Profile, error) {
	args := m.Called(ctx, defaults)
	profile, _ := args.Get(0).(*mongoconfig.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileCollection) Update(ctx context.Context, update *mongoconfig.ProfileUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *mockProfileCollection) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
