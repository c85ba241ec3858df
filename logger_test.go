package fx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level), "level %v", level)
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		assert.False(t, l.Enabled(context.Background(), level))
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("distort: apply", "filter", "twirl")
	assert.True(t, strings.Contains(buf.String(), "filter=twirl"), buf.String())

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
		}()
		go func() {
			defer wg.Done()
			Logger().Debug("x")
		}()
	}
	wg.Wait()
}

func TestResolveOptions(t *testing.T) {
	o := ResolveOptions(nil)
	require.NotNil(t, o.Rand)
	v := o.Rand.Float64()
	assert.True(t, v >= 0 && v < 1)

	rng := rand.New(rand.NewPCG(1, 2))
	o = ResolveOptions([]Option{nil, WithRand(rng)})
	assert.Same(t, rng, o.Rand)
}

func TestParameterError(t *testing.T) {
	err := InvalidParameter("sharpen.UnsharpMask", "Radius", -1.0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Contains(t, err.Error(), "Radius")

	var pe *ParameterError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "sharpen.UnsharpMask", pe.Op)
}

func TestSizeMismatch(t *testing.T) {
	a, _ := NewPixelBuffer(1, 2)
	b, _ := NewPixelBuffer(3, 4)
	err := SizeMismatch("blend.Image", a, b)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	assert.Contains(t, err.Error(), "1x2 vs 3x4")
}
