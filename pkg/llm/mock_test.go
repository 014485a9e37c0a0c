package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_FIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	first, err := m.Generate(context.Background(), Request{Prompt: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(first.Content))

	second, err := m.Generate(context.Background(), Request{Prompt: "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(second.Content))

	_, err = m.Generate(context.Background(), Request{Prompt: "c"})
	var unavailable *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable))

	assert.Equal(t, 3, m.CallCount())
	last, ok := m.LastCall()
	require.True(t, ok)
	assert.Equal(t, "c", last.Prompt)
}

func TestMockProvider_FallbackBySchema(t *testing.T) {
	m := NewMockProvider()
	schema := testSchema()
	m.SetFallback(schema.Name, MockResponse{
		Content: json.RawMessage(`{"title":"t","cards":[{"front":"a","back":"b"},{"front":"c","back":"d"}]}`),
	})

	for i := 0; i < 2; i++ {
		resp, err := m.Generate(context.Background(), Request{Schema: schema})
		require.NoError(t, err)
		assert.Equal(t, "mock", resp.Model)
	}

	_, err := m.Generate(context.Background(), Request{Schema: &Schema{Name: "other"}})
	assert.Error(t, err)
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: json.RawMessage(`{"title":"t","cards":[]}`)})

	_, err := m.Generate(context.Background(), Request{Schema: testSchema()})
	var invErr *ErrInvalidResponse
	assert.True(t, errors.As(err, &invErr))
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider(MockResponse{Err: boom})

	_, err := m.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, boom)
}
