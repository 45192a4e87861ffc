package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointer(t *testing.T) {
	var p Pointer

	assert.Same(t, Discard(), p.Load(), "the zero value is silent")
	assert.False(t, p.Load().Enabled(context.Background(), slog.LevelError))

	buf := &bytes.Buffer{}
	p.Set(slog.New(slog.NewTextHandler(buf, nil)))
	p.Load().Info("hello", "n", 1)
	assert.Contains(t, buf.String(), "msg=hello n=1")

	p.Set(nil)
	assert.Same(t, Discard(), p.Load(), "nil restores the silent default")
}
