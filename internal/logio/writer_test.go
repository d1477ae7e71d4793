package logio_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jcorbin/goslices/internal/logio"
)

type lineLog []string

func (ll *lineLog) logf(mess string, args ...interface{}) {
	*ll = append(*ll, fmt.Sprintf(mess, args...))
}

func Test_Writer(t *testing.T) {
	var lines lineLog
	lw := &logio.Writer{Logf: lines.logf}

	fmt.Fprintf(lw, "one\ntw")
	assert.Equal(t, lineLog{"one"}, lines, "expected only complete lines")

	fmt.Fprintf(lw, "o\nthree")
	assert.Equal(t, lineLog{"one", "two"}, lines)

	require.NoError(t, lw.Close())
	assert.Equal(t, lineLog{"one", "two", "three"}, lines, "expected close to flush the partial line")
}

func Test_Writer_Logger(t *testing.T) {
	var lines lineLog
	lw := &logio.Writer{Logf: lines.logf}
	log := lw.Logger(zapcore.InfoLevel)

	log.Debug("hidden")
	log.Info("extracted", zap.Int("start", 1), zap.Int("end", 3))
	require.NoError(t, log.Sync())

	require.Len(t, lines, 1, "expected debug to be filtered")
	assert.Contains(t, lines[0], "INFO")
	assert.Contains(t, lines[0], "extracted")
	assert.Contains(t, lines[0], `"start": 1`)
}
