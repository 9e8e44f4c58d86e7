package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/media-service/pkg/log"
)

func TestLogger_WritesFieldsAndContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(log.LevelDebug, &buf)

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.
		WithField("userID", "u1").
		WithError(errors.New("boom")).
		Info(ctx, "handled")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "handled", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "abc", line["requestID"])
	assert.Equal(t, "u1", line["userID"])
	assert.Equal(t, "boom", line["error"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(log.LevelWarn, &buf)

	logger.Info(context.Background(), "skipped")
	logger.Error(context.Background(), "written")

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.Equal(t, 1, strings.Count(out, "written"))
}

func TestLogger_DisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(log.LevelDisabled, &buf)

	logger.With(log.Fields{"a": 1}).Error(context.Background(), "nothing")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, log.ParseLevel("debug"))
	assert.Equal(t, log.LevelError, log.ParseLevel(" ERROR "))
	assert.Equal(t, log.LevelDisabled, log.ParseLevel("disabled"))
	assert.Equal(t, log.LevelInfo, log.ParseLevel("verbose"))
}
