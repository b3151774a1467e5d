package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavalhaDigital/barber-agenda/internal/models"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusScheduled, InitialStatus(OriginOnline))
	assert.Equal(t, StatusInService, InitialStatus(OriginWalkIn))
}

func TestTransicoes(t *testing.T) {
	now := time.Now()

	t.Run("fluxo completo", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusScheduled)}

		require.NoError(t, MarkWaiting(ap))
		assert.Equal(t, string(StatusWaiting), ap.Status)

		require.NoError(t, Start(ap, now))
		assert.Equal(t, string(StatusInService), ap.Status)
		assert.NotNil(t, ap.StartedAt)

		require.NoError(t, Complete(ap, now))
		assert.Equal(t, string(StatusCompleted), ap.Status)
		assert.NotNil(t, ap.CompletedAt)
	})

	t.Run("inicio direto sem espera", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusScheduled)}
		require.NoError(t, Start(ap, now))
	})

	t.Run("nao conclui sem atendimento", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusScheduled)}
		assert.Error(t, Complete(ap, now))
	})

	t.Run("cancela em qualquer estado nao terminal", func(t *testing.T) {
		for _, s := range []Status{StatusScheduled, StatusWaiting, StatusInService} {
			ap := &models.Appointment{Status: string(s)}
			require.NoError(t, Cancel(ap, now), "status %s", s)
			assert.NotNil(t, ap.CancelledAt)
		}
	})

	t.Run("estados terminais nao cancelam", func(t *testing.T) {
		for _, s := range []Status{StatusCompleted, StatusCancelled} {
			ap := &models.Appointment{Status: string(s)}
			assert.Error(t, Cancel(ap, now), "status %s", s)
		}
	})

	t.Run("terminal nao reinicia", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusCompleted)}
		assert.Error(t, Start(ap, now))
	})
}

func TestOccupiesSlot(t *testing.T) {
	assert.True(t, OccupiesSlot(StatusScheduled))
	assert.True(t, OccupiesSlot(StatusWaiting))
	assert.True(t, OccupiesSlot(StatusInService))
	assert.True(t, OccupiesSlot(StatusCompleted))
	assert.False(t, OccupiesSlot(StatusCancelled))
}
