package http

import (
	"io"
	"strings"
	"testing"

	"github.com/quentez/httpbatch/http/status"
	"github.com/quentez/httpbatch/kv"
	"github.com/stretchr/testify/require"
)

func newJSONBody(payload string) *Body {
	headers := kv.New().Add("Content-Type", "application/json")
	return NewBody(headers, strings.NewReader(payload))
}

func TestBody(t *testing.T) {
	t.Run("bytes are cached", func(t *testing.T) {
		body := newJSONBody(`{"hello":"world"}`)

		first, err := body.Bytes()
		require.NoError(t, err)
		second, err := body.Bytes()
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Equal(t, `{"hello":"world"}`, string(first))
	})

	t.Run("string", func(t *testing.T) {
		body := NewBody(kv.New(), strings.NewReader("plain"))

		str, err := body.String()
		require.NoError(t, err)
		require.Equal(t, "plain", str)
	})

	t.Run("reader", func(t *testing.T) {
		body := NewBody(kv.New(), strings.NewReader("stream me"))

		data, err := io.ReadAll(body)
		require.NoError(t, err)
		require.Equal(t, "stream me", string(data))
	})

	t.Run("empty body", func(t *testing.T) {
		body := NewBody(kv.New().Add("Content-Length", "0"), strings.NewReader(""))

		data, err := body.Bytes()
		require.NoError(t, err)
		require.Empty(t, data)
	})
}

func TestBodyJSON(t *testing.T) {
	t.Run("decodes compatible content", func(t *testing.T) {
		body := newJSONBody(`{"a":1,"b":2}`)

		var model map[string]int
		require.NoError(t, body.JSON(&model))
		require.Equal(t, map[string]int{"a": 1, "b": 2}, model)
	})

	t.Run("content type parameters are ignored", func(t *testing.T) {
		headers := kv.New().Add("Content-Type", "application/json; charset=utf-8")
		body := NewBody(headers, strings.NewReader(`{"a":1}`))

		var model map[string]int
		require.NoError(t, body.JSON(&model))
		require.Equal(t, map[string]int{"a": 1}, model)
	})

	t.Run("incompatible content type", func(t *testing.T) {
		headers := kv.New().Add("Content-Type", "text/plain")
		body := NewBody(headers, strings.NewReader("not json"))

		var model any
		require.ErrorIs(t, body.JSON(&model), status.ErrUnsupportedMediaType)
	})
}
