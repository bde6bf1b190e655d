package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsContextDone(t *testing.T) {
	assert.True(t, IsContextDone(context.Canceled))
	assert.True(t, IsContextDone(WithStack(context.DeadlineExceeded)))
	assert.True(t, IsContextDone(fmt.Errorf("lookup: %w", context.Canceled)))
	assert.False(t, IsContextDone(New("connection refused")))
	assert.False(t, IsContextDone(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	sentinel := New("not found")

	err := Wrapf(sentinel, "load %d", 7)

	assert.True(t, Is(err, sentinel))
	assert.EqualError(t, err, "load 7: not found")
	assert.NoError(t, Wrap(nil, "ignored"))
}
