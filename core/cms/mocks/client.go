package mocks

import (
	"context"
	"io"

	"content-sync/core/cms"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of cms.Client
type Client struct {
	mock.Mock
}

var _ cms.Client = (*Client)(nil)

func (m *Client) ContentTypes(ctx context.Context) ([]cms.ContentType, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]cms.ContentType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Entries(ctx context.Context, q cms.Query) (*cms.EntryCollection, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).(*cms.EntryCollection); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Assets(ctx context.Context, q cms.Query) (*cms.AssetCollection, error) {
	args := m.Called(ctx, q)
	if v, ok := args.Get(0).(*cms.AssetCollection); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateEntry(ctx context.Context, contentType string, fields cms.Fields) (*cms.Entry, error) {
	args := m.Called(ctx, contentType, fields)
	if v, ok := args.Get(0).(*cms.Entry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateEntry(ctx context.Context, entry *cms.Entry, fields cms.Fields) (*cms.Entry, error) {
	args := m.Called(ctx, entry, fields)
	if v, ok := args.Get(0).(*cms.Entry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PublishEntry(ctx context.Context, entry *cms.Entry) (*cms.Entry, error) {
	args := m.Called(ctx, entry)
	if v, ok := args.Get(0).(*cms.Entry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UnpublishEntry(ctx context.Context, entry *cms.Entry) (*cms.Entry, error) {
	args := m.Called(ctx, entry)
	if v, ok := args.Get(0).(*cms.Entry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DeleteEntry(ctx context.Context, entry *cms.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *Client) Upload(ctx context.Context, r io.Reader) (*cms.Upload, error) {
	args := m.Called(ctx, r)
	if v, ok := args.Get(0).(*cms.Upload); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateAsset(ctx context.Context, fields cms.Fields) (*cms.Asset, error) {
	args := m.Called(ctx, fields)
	if v, ok := args.Get(0).(*cms.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ProcessAsset(ctx context.Context, asset *cms.Asset, locale string) error {
	args := m.Called(ctx, asset, locale)
	return args.Error(0)
}

func (m *Client) GetAsset(ctx context.Context, id string) (*cms.Asset, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*cms.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PublishAsset(ctx context.Context, asset *cms.Asset) (*cms.Asset, error) {
	args := m.Called(ctx, asset)
	if v, ok := args.Get(0).(*cms.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
