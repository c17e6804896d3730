package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/pkg/logger"
)

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{App: "estoque-api", Env: "production", Level: "info", Out: &buf})

	sub := l.Named("store")
	sub.Info().Str("product_id", "p1").Msg("producto agregado")
	l.Debug().Msg("no se emite")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "estoque-api", line["app"])
	assert.Equal(t, "store", line["component"])
	assert.Equal(t, "p1", line["product_id"])
	assert.Equal(t, "producto agregado", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestNew_ConsolaEnDevelopment(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "development", Level: "debug", Out: &buf})

	l.Debug().Msg("hola")

	assert.Contains(t, buf.String(), "hola")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verbose"))
	assert.Equal(t, zerolog.TraceLevel, logger.ParseLevel(" trace "))
}
