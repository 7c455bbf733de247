package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/onboarding-api/pkg/logger"
)

func TestLogger_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Component("contract").Info().Str("customer_id", "c-1").Msg("contrato generado")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contract", entry["component"])
	assert.Equal(t, "c-1", entry["customer_id"])
	assert.Equal(t, "contrato generado", entry["message"])
}

func TestLogger_NivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Debug().Msg("no debe aparecer")
	log.Info().Msg("tampoco")

	assert.Empty(t, buf.String())
}
