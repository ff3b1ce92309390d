package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ Model = (*MockModel)(nil)

func TestMockModelCannedResponse(t *testing.T) {
	mock := NewMockModel("mock-model", "mock")
	mock.AddResponse("ping", "pong")

	respCh, errCh := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: "user", Text: "ping"}},
	})

	var final string
	for resp := range respCh {
		if !resp.Partial {
			final = resp.Text
		}
	}
	require.NoError(t, <-errCh)
	assert.Equal(t, "pong", final)
}

func TestMockModelDefaultResponse(t *testing.T) {
	mock := NewMockModel("mock-model", "mock")

	respCh, errCh := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: "user", Text: "anything"}},
	})

	var final string
	for resp := range respCh {
		final = resp.Text
	}
	require.NoError(t, <-errCh)
	assert.Equal(t, "Mock response to: anything", final)
}

func TestMockModelStreamingChunks(t *testing.T) {
	mock := NewMockModel("mock-model", "mock")
	mock.AddResponse("hi", "abc")

	respCh, errCh := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
		Stream:   true,
	})

	var partials []string
	var final string
	for resp := range respCh {
		if resp.Partial {
			partials = append(partials, resp.Text)
		} else {
			final = resp.Text
		}
	}
	require.NoError(t, <-errCh)
	assert.Equal(t, []string{"a", "b", "c"}, partials)
	assert.Equal(t, "abc", final)
}

func TestMockModelNoMessages(t *testing.T) {
	mock := NewMockModel("mock-model", "mock")

	respCh, errCh := mock.Generate(context.Background(), Request{})
	for range respCh {
	}
	assert.Error(t, <-errCh)
}

func TestMockModelInfo(t *testing.T) {
	mock := NewMockModel("mock-model", "mock")
	assert.Equal(t, Info{Name: "mock-model", Provider: "mock"}, mock.Info())
}
