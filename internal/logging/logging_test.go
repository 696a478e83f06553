package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gauge/internal/logging"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		l, err := logging.New("debug", json)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zapcore.DebugLevel))
	}

	l, err := logging.New(" warn ", false)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.ErrorLevel))

	_, err = logging.New("chatty", false)
	require.Error(t, err)
}
