package notification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushiymas/inventario-api/internal/application/notification"
)

// TTL corto para no alargar la suite; la mecánica es la misma que con los
// 3 segundos de producción.
const testTTL = 50 * time.Millisecond

func TestSink_NotifyYActive(t *testing.T) {
	sink := notification.NewSink(testTTL)
	defer sink.Close()

	sink.Success("primera")
	sink.Error("segunda")

	active := sink.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "primera", active[0].Message, "el orden de llegada se conserva")
	assert.Equal(t, notification.SeveritySuccess, active[0].Severity)
	assert.Equal(t, "segunda", active[1].Message)
	assert.Equal(t, notification.SeverityError, active[1].Severity)
	assert.NotEmpty(t, active[0].ID)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestSink_ExpiracionIndependientePorEntrada(t *testing.T) {
	sink := notification.NewSink(testTTL)
	defer sink.Close()

	sink.Success("vieja")
	time.Sleep(testTTL / 2)
	sink.Success("nueva")

	// La vieja expira primero; la nueva sigue visible porque su timer es propio.
	require.Eventually(t, func() bool {
		active := sink.Active()
		return len(active) == 1 && active[0].Message == "nueva"
	}, time.Second, 5*time.Millisecond, "solo la notificación nueva debe seguir visible")

	require.Eventually(t, func() bool {
		return len(sink.Active()) == 0
	}, time.Second, 5*time.Millisecond, "toda notificación desaparece tras su ventana")
}

func TestSink_SeveridadDesconocidaSeNormalizaASuccess(t *testing.T) {
	sink := notification.NewSink(testTTL)
	defer sink.Close()

	sink.Notify("mensaje", "warning")

	active := sink.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notification.SeveritySuccess, active[0].Severity)
}

func TestSink_CloseVaciaYDetiene(t *testing.T) {
	sink := notification.NewSink(time.Hour)
	sink.Success("pendiente")
	sink.Close()

	assert.Empty(t, sink.Active())

	// Notificar tras Close es un no-op, no un pánico.
	sink.Success("tardía")
	assert.Empty(t, sink.Active())
}
