package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func getStorage() *Storage {
	return New().
		Add("Foo", "bar").
		Add("Hello", "World").
		Add("Lorem", "ipsum").
		Add("hello", "Pavlo")
}

func TestStorage(t *testing.T) {
	t.Run("value picks the first entry", func(t *testing.T) {
		s := getStorage()

		require.Equal(t, "bar", s.Value("foo"))
		require.Equal(t, "World", s.Value("HELLO"))
		require.Empty(t, s.Value("unknown"))
		require.Equal(t, "fallback", s.ValueOr("unknown", "fallback"))
	})

	t.Run("values preserve insertion order", func(t *testing.T) {
		s := getStorage()

		require.Equal(t, []string{"World", "Pavlo"}, s.Values("hello"))
		require.Nil(t, s.Values("unknown"))
	})

	t.Run("keys are unique", func(t *testing.T) {
		s := getStorage()

		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, s.Keys())
	})

	t.Run("pairs stay ordered and verbatim", func(t *testing.T) {
		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "World"},
			{"Lorem", "ipsum"},
			{"hello", "Pavlo"},
		}

		require.Equal(t, want, getStorage().Unwrap())
	})

	t.Run("iter is available over the pairs", func(t *testing.T) {
		require.NotNil(t, getStorage().Iter())
		require.NotNil(t, New().Iter())
	})

	t.Run("has and len", func(t *testing.T) {
		s := getStorage()

		require.True(t, s.Has("LOREM"))
		require.False(t, s.Has("ipsum"))
		require.Equal(t, 4, s.Len())
		require.False(t, s.Empty())
		require.True(t, New().Empty())
	})

	t.Run("clear keeps the storage usable", func(t *testing.T) {
		s := getStorage().Clear()

		require.True(t, s.Empty())
		s.Add("a", "b")
		require.Equal(t, "b", s.Value("a"))
	})
}
