package mocks

import (
	"context"

	"nursery-monitor/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of feed.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchRecords(ctx context.Context, sheet string) ([]reconcile.RawRecord, error) {
	args := m.Called(ctx, sheet)
	if rows, ok := args.Get(0).([]reconcile.RawRecord); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}
