package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

func TestCompleteOnboarding_UpdatesProfileAndCurrentMonthBudget(t *testing.T) {
	store, _, mockBudgets, mockProfiles := newActionTestStorage(t)

	mockProfiles.On("Update", mock.Anything, mock.MatchedBy(func(u *mongoconfig.ProfileUpdate) bool {
		return u.Currency != nil && *u.Currency == "€" &&
			u.Onboarded != nil && *u.Onboarded &&
			u.Categories == nil &&
			u.Name == nil && u.DarkMode == nil
	})).Return(nil)
	mockBudgets.On("Upsert", mock.Anything, service.CurrentMonthKey(), 900.0, mock.Anything).Return(nil)

	action := &CompleteOnboarding{Currency: "€", Target: 900}
	err := action.Perform(context.Background(), store)

	assert.NoError(t, err)
	mockProfiles.AssertExpectations(t)
	mockBudgets.AssertExpectations(t)
}

func TestCompleteOnboarding_ReplacesCategoriesWhenProvided(t *testing.T) {
	store, _, mockBudgets, mockProfiles := newActionTestStorage(t)

	mockProfiles.On("Update", mock.Anything, mock.MatchedBy(func(u *mongoconfig.ProfileUpdate) bool {
		return len(u.Categories) == 2 && u.Categories[0] == "Rent" && u.Categories[1] == "Fun"
	})).Return(nil)
	mockBudgets.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	action := &CompleteOnboarding{Currency: "$", Target: 500, Categories: []string{"Rent", "Fun"}}
	err := action.Perform(context.Background(), store)

	assert.NoError(t, err)
	mockProfiles.AssertExpectations(t)
}

func TestCompleteOnboarding_NonPositiveTargetWritesNothing(t *testing.T) {
	store, _, mockBudgets, mockProfiles := newActionTestStorage(t)

	action := &CompleteOnboarding{Currency: "$", Target: 0}
	err := action.Perform(context.Background(), store)

	assert.ErrorIs(t, err, service.ErrNonPositiveAmount)
	mockProfiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockBudgets.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteOnboarding_ProfileWriteFailureStopsBeforeBudget(t *testing.T) {
	store, _, mockBudgets, mockProfiles := newActionTestStorage(t)

	mockProfiles.On("Update", mock.Anything, mock.Anything).Return(errors.New("write failed"))

	action := &CompleteOnboarding{Currency: "$", Target: 500}
	err := action.Perform(context.Background(), store)

	assert.Error(t, err)
	mockBudgets.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteOnboarding_BudgetWriteFailureNamesCompletedStep(t *testing.T) {
	store, _, mockBudgets, mockProfiles := newActionTestStorage(t)

	mockProfiles.On("Update", mock.Anything, mock.Anything).Return(nil)
	cause := errors.New("write failed")
	mockBudgets.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cause)

	action := &CompleteOnboarding{Currency: "$", Target: 500}
	err := action.Perform(context.Background(), store)

	assert.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "profile updated")
}
