package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTxManager(t *testing.T) {
	t.Run("runs the function and propagates its error", func(t *testing.T) {
		m := NewMemoryTxManager()
		sentinel := errors.New("boom")

		ran := false
		require.NoError(t, m.RunInTx(context.Background(), func(ctx context.Context) error {
			ran = true
			return nil
		}))
		assert.True(t, ran)

		assert.ErrorIs(t, m.RunInTx(context.Background(), func(ctx context.Context) error {
			return sentinel
		}), sentinel)
	})

	t.Run("refuses a cancelled context", func(t *testing.T) {
		m := NewMemoryTxManager()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := m.RunInTx(ctx, func(ctx context.Context) error {
			t.Fatal("function should not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("falls back outside a transaction", func(t *testing.T) {
		assert.Nil(t, FromContext(context.Background(), nil))
	})
}
