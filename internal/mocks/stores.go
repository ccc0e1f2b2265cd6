// Package mocks provides testify mock implementations of the model
// interfaces for unit tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/gastor/gastor-server/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// CategoryStore is a mock implementation of model.CategoryStore.
type CategoryStore struct {
	mock.Mock
}

func (m *CategoryStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Create(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

// ExpenseStore is a mock implementation of model.ExpenseStore.
type ExpenseStore struct {
	mock.Mock
}

func (m *ExpenseStore) Create(ctx context.Context, expense model.Expense) (model.Expense, error) {
	args := m.Called(ctx, expense)
	return args.Get(0).(model.Expense), args.Error(1)
}

func (m *ExpenseStore) GetByID(ctx context.Context, id, userID uuid.UUID) (model.Expense, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(model.Expense), args.Error(1)
}

func (m *ExpenseStore) List(ctx context.Context, userID uuid.UUID, filter model.ExpenseFilter) ([]model.Expense, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *ExpenseStore) Update(ctx context.Context, id, userID uuid.UUID, params model.UpdateExpenseParams) (model.Expense, error) {
	args := m.Called(ctx, id, userID, params)
	return args.Get(0).(model.Expense), args.Error(1)
}

func (m *ExpenseStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *ExpenseStore) SetAttachment(ctx context.Context, id, userID uuid.UUID, ref string) error {
	args := m.Called(ctx, id, userID, ref)
	return args.Error(0)
}

func (m *ExpenseStore) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
