package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/teatro-billing/pkg/logger"
)

// ─────────────────────────────────────────────
// Logger estructurado del servicio
// ─────────────────────────────────────────────

func TestNew_ProductionEmiteJSONConServicio(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "teatro-billing",
		Output:  &buf,
	})

	log.Info().Str("customer", "BigCo").Msg("estado de cuenta generado")

	out := buf.String()
	require.NotEmpty(t, out, "debe emitir el evento en el writer inyectado")
	assert.Contains(t, out, `"service":"teatro-billing"`, "cada evento lleva el nombre del servicio")
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"customer":"BigCo"`)
	assert.Contains(t, out, `"time"`, "cada evento lleva timestamp")
}

func TestNew_SinServicioNoAdjuntaCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Msg("sin servicio")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_NivelFiltraEventosMenores(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "error", Output: &buf})

	log.Info().Msg("descartado")
	log.Debug().Msg("descartado")
	assert.Empty(t, buf.String(), "info y debug no pasan el filtro error")

	log.Error().Msg("registrado")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Output: &buf})

	log.Debug().Msg("descartado")
	assert.Empty(t, buf.String(), "debug queda por debajo del default info")

	log.Info().Msg("registrado")
	assert.Contains(t, buf.String(), `"level":"info"`)
}
