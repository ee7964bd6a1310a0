package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithWriterLevels(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	logger := NewWithWriter(buff, "warn")

	logger.Info().Msg("dropped")
	require.Equal(t, 0, buff.Len())

	logger.Warn().Str("component", "store").Msg("kept")
	require.Contains(t, buff.String(), `"component":"store"`)
	require.Contains(t, buff.String(), `"level":"warn"`)
}

func TestNewWithWriterUnknownLevel(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	logger := NewWithWriter(buff, "loud")

	logger.Debug().Msg("dropped")
	require.Equal(t, 0, buff.Len())
	logger.Info().Msg("kept")
	require.NotZero(t, buff.Len())
}
