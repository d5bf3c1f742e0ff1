package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/internal/logging"
)

func TestNewToJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewTo(&buf, "warn", "json")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "station", "B")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "B", rec["station"])
}

func TestNewToText(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewTo(&buf, "DEBUG", "")
	require.NoError(t, err)
	log.Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestNewToErrors(t *testing.T) {
	_, err := logging.NewTo(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)
	_, err = logging.NewTo(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}
