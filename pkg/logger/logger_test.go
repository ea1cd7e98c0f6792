package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpereyra/gestion-comercio-api/pkg/logger"
)

// New redirige el logger global; el nivel se observa ahí.
func TestNew_NivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "error"})

	require.NotNil(t, l)
	assert.Equal(t, zerolog.ErrorLevel, log.Logger.GetLevel())
}

// Un nivel desconocido o vacío cae en info.
func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	logger.New(logger.Config{Env: "production", Level: "verboso"})
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())

	logger.New(logger.Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
}
