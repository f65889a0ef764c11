package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromVerboseCount(t *testing.T) {
	require.Equal(t, LevelError, FromVerboseCount(0))
	require.Equal(t, LevelInfo, FromVerboseCount(1))
	require.Equal(t, LevelDebug, FromVerboseCount(2))
	require.Equal(t, LevelTrace, FromVerboseCount(3))
	require.Equal(t, LevelTrace, FromVerboseCount(9))
}

func TestNopSinkSatisfiesInterface(t *testing.T) {
	var sink Sink = NopSink{}
	sink.Error(nil)
	sink.Info("x")
	sink.Debug("x")
	sink.Trace("x")
}
