package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Test_ParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    zapcore.Level
		wantErr string
	}{
		{name: "empty defaults to info", give: "", want: zapcore.InfoLevel},
		{name: "debug", give: "debug", want: zapcore.DebugLevel},
		{name: "upper case with spaces", give: " WARN ", want: zapcore.WarnLevel},
		{name: "error", give: "error", want: zapcore.ErrorLevel},
		{name: "unknown", give: "verbose", wantErr: `invalid log level "verbose"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_NewLeveled(t *testing.T) {
	t.Parallel()

	lvl := zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	lggr, err := NewLeveled(lvl)
	require.NoError(t, err)
	require.NotNil(t, lggr)

	lvl.SetLevel(zapcore.DebugLevel)
	assert.True(t, lvl.Enabled(zapcore.DebugLevel))
}

func Test_Named(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)
	child := lggr.Named("resolver")

	assert.Equal(t, "resolver", child.Name())

	child.Infow("resolved", "count", 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "resolver", entries[0].LoggerName)
	assert.Equal(t, int64(2), entries[0].ContextMap()["count"])
}

func Test_Nop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Info("discarded")
	assert.Empty(t, lggr.Name())
}
