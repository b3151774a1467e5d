package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavalhaDigital/barber-agenda/internal/audit"
)

func walkInInput(force bool) CreateWalkInInput {
	return CreateWalkInInput{
		BarbershopID: 1,
		BarberID:     1,
		ClientName:   "Pedro",
		ClientPhone:  "11988887777",
		ProductID:    10, // 30min
		Force:        force,
	}
}

func newWalkInUC(repo *fakeRepo, clock fixedClock) *CreateWalkIn {
	return NewCreateWalkIn(repo, audit.NewDispatcher(nil), nil, clock)
}

func TestCreateWalkIn_SemConflito(t *testing.T) {
	repo := newFakeRepo()
	clock := fixedClock{now: testDate.Add(14 * time.Hour)}

	uc := newWalkInUC(repo, clock)

	res, err := uc.Execute(context.Background(), walkInInput(false))
	require.NoError(t, err)
	require.NotNil(t, res.Appointment)
	assert.Nil(t, res.Conflict)

	ap := res.Appointment
	assert.Equal(t, "in_service", ap.Status)
	assert.Equal(t, "walk_in", ap.Origin)
	assert.Equal(t, "14:00", ap.StartTime.Format("15:04"))
	assert.Equal(t, "14:30", ap.EndTime.Format("15:04"))
	require.NotNil(t, ap.StartedAt)
}

func TestCreateWalkIn_ConflitoVoltaAvisoSemCriar(t *testing.T) {
	// agendamento vivo 14:00–15:00; encaixe agora às 14:30 conflita
	repo := newFakeRepo()
	conflictID := repo.addAppointment(
		testDate.Add(14*time.Hour),
		testDate.Add(15*time.Hour),
		"scheduled",
	)

	clock := fixedClock{now: testDate.Add(14*time.Hour + 30*time.Minute)}
	uc := newWalkInUC(repo, clock)

	res, err := uc.Execute(context.Background(), walkInInput(false))
	require.NoError(t, err) // conflito não é erro: é aviso
	assert.Nil(t, res.Appointment)

	require.NotNil(t, res.Conflict)
	assert.Equal(t, conflictID, res.Conflict.ID)

	// nada foi criado
	assert.Len(t, repo.appointments, 1)
}

func TestCreateWalkIn_ForceCriaMesmoComConflito(t *testing.T) {
	repo := newFakeRepo()
	repo.addAppointment(
		testDate.Add(14*time.Hour),
		testDate.Add(15*time.Hour),
		"in_service",
	)

	clock := fixedClock{now: testDate.Add(14*time.Hour + 30*time.Minute)}
	uc := newWalkInUC(repo, clock)

	res, err := uc.Execute(context.Background(), walkInInput(true))
	require.NoError(t, err)
	require.NotNil(t, res.Appointment)
	assert.Nil(t, res.Conflict)

	assert.Len(t, repo.appointments, 2)
}

func TestCreateWalkIn_TruncaParaOMinuto(t *testing.T) {
	repo := newFakeRepo()
	clock := fixedClock{now: testDate.Add(14*time.Hour + 7*time.Minute + 42*time.Second)}

	uc := newWalkInUC(repo, clock)

	res, err := uc.Execute(context.Background(), walkInInput(false))
	require.NoError(t, err)
	assert.Equal(t, "14:07", res.Appointment.StartTime.Format("15:04"))
	assert.Equal(t, 0, res.Appointment.StartTime.Second())
}
