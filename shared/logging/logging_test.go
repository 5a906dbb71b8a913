package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftea/checkout-system/shared/logging"
)

type stepType string

func TestAttrs(t *testing.T) {
	assert.Equal(t, "session_id", logging.SessionID("s-1").Key)
	assert.Equal(t, "checkout-1", logging.CheckoutID("checkout-1").Value.String())
	assert.Equal(t, "shipping", logging.StepType(stepType("shipping")).Value.String())
	assert.Equal(t, "edit", logging.Action("edit").Value.String())
	assert.Equal(t, "boom", logging.Error(errors.New("boom")).Value.String())
	assert.Equal(t, "", logging.Error(nil).Value.String())
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "checkout-service", "test", "1.0.0", slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("visible", logging.SessionID("s-1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["msg"])
	assert.Equal(t, "checkout-service", line["service"])
	assert.Equal(t, "test", line["env"])
	assert.Equal(t, "s-1", line["session_id"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
}
