package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
)

// stubRepo embute a porta: só os métodos que o relatório usa são
// implementados, o resto entra em pânico se for chamado.
type stubRepo struct {
	domain.Repository
	appointments []models.Appointment
}

func (s *stubRepo) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	return &models.Barbershop{ID: id, Slug: "teste", Timezone: "UTC"}, nil
}

func (s *stubRepo) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.StartTime.Before(end) && !ap.StartTime.Before(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func ap(day int, hour int, status, origin, product string, amount float64) models.Appointment {
	start := time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
	return models.Appointment{
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		Status:        status,
		Origin:        origin,
		Amount:        amount,
		BarberProduct: models.BarberProduct{Name: product},
	}
}

func TestRevenue_SomenteConcluidoConta(t *testing.T) {
	repo := &stubRepo{appointments: []models.Appointment{
		ap(3, 10, "completed", "online", "Corte", 50),
		ap(3, 11, "completed", "walk_in", "Corte", 50),
		ap(4, 10, "completed", "online", "Corte + Barba", 80),
		ap(4, 11, "cancelled", "online", "Corte", 50),
		ap(5, 10, "scheduled", "online", "Corte", 50),
	}}

	uc := NewRevenue(repo)

	summary, err := uc.Execute(context.Background(), 1, 1, 2024, 6)
	require.NoError(t, err)

	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 6, summary.Month)

	// agendado ainda não é receita; cancelado nunca é
	assert.Equal(t, 3, summary.CompletedCount)
	assert.Equal(t, 1, summary.CancelledCount)
	assert.Equal(t, 1, summary.WalkInCount)
	assert.InDelta(t, 180.0, summary.TotalAmount, 0.001)

	require.Len(t, summary.ByDay, 2)
	assert.Equal(t, "2024-06-03", summary.ByDay[0].Date)
	assert.Equal(t, 2, summary.ByDay[0].Completed)
	assert.InDelta(t, 100.0, summary.ByDay[0].Amount, 0.001)
	assert.Equal(t, "2024-06-04", summary.ByDay[1].Date)
	assert.InDelta(t, 80.0, summary.ByDay[1].Amount, 0.001)

	// maior faturamento primeiro
	require.Len(t, summary.ByProduct, 2)
	assert.Equal(t, "Corte", summary.ByProduct[0].ProductName)
	assert.InDelta(t, 100.0, summary.ByProduct[0].Amount, 0.001)
	assert.Equal(t, "Corte + Barba", summary.ByProduct[1].ProductName)
}

func TestRevenue_MesVazio(t *testing.T) {
	uc := NewRevenue(&stubRepo{})

	summary, err := uc.Execute(context.Background(), 1, 1, 2024, 7)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalAmount)
	assert.Zero(t, summary.CompletedCount)
	assert.Empty(t, summary.ByDay)
	assert.Empty(t, summary.ByProduct)
}
