package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	base := New("upstream 503")

	assert.Nil(t, Retryable(nil))
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(base))

	wrapped := Wrap(Retryable(base), "sync card")
	assert.True(t, IsRetryable(wrapped))
	assert.True(t, Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "retryable: upstream 503")
}

func TestIsRetryable_Deadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	assert.True(t, IsRetryable(Wrap(ctx.Err(), "GET loyaltyClass")))
}
