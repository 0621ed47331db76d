package logs

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")

	logger, err := New()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNew_Release(t *testing.T) {
	t.Setenv("GIN_MODE", "release")

	var buf bytes.Buffer
	logger, err := New(WithOutput(&buf))
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.WithField("module", "test").Info("hello")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["module"])
}

func TestNew_Options(t *testing.T) {
	logger, err := New(WithLevel("warn"), WithEncoding(EncodingTypeJSON))
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	_, err = New(WithLevel("loud"))
	require.Error(t, err)

	_, err = New(WithEncoding("xml"))
	require.Error(t, err)
}
