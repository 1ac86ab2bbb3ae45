package mocks

import (
	"context"

	"storage-sdk/core/transport"

	"github.com/stretchr/testify/mock"
)

// Transport is a mock implementation of transport.Transport
type Transport struct {
	mock.Mock
}

func (m *Transport) Post(ctx context.Context, path string, body any) *transport.Envelope {
	args := m.Called(ctx, path, body)
	if env, ok := args.Get(0).(*transport.Envelope); ok {
		return env
	}
	return nil
}
