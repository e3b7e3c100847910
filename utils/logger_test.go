package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_LevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		_ = SetLevel("info")
	})

	require.NoError(t, SetLevel("warn"))
	Info("hidden", nil)
	require.Empty(t, buf.String())

	Warn("shown", map[string]any{"product_id": "p1"})
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, "warning", entry["level"])
	require.Equal(t, "p1", entry["product_id"])

	require.Error(t, SetLevel("loud"))
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		_ = SetLevel("info")
	})

	Debug("hidden at info", nil)
	require.Empty(t, buf.String())

	require.NoError(t, SetLevel("debug"))
	Debug("products searched", map[string]any{"count": 2})
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, float64(2), entry["count"])
}
