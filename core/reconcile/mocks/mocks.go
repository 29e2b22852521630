package mocks

import (
	"context"

	"seerr-cleaner/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Catalog is a mock implementation of reconcile.Catalog
type Catalog struct {
	mock.Mock
}

func (m *Catalog) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Catalog) FetchPage(ctx context.Context, pageIndex int) (*reconcile.Page, error) {
	args := m.Called(ctx, pageIndex)
	if page, ok := args.Get(0).(*reconcile.Page); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Catalog) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Library is a mock implementation of reconcile.Library
type Library struct {
	mock.Mock
}

func (m *Library) Exists(ctx context.Context, kind reconcile.Kind, ref int) (bool, error) {
	args := m.Called(ctx, kind, ref)
	return args.Bool(0), args.Error(1)
}
