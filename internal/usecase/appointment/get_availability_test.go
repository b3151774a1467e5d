package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
)

// sábado 2024-06-01
var testDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func availInput(step int) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     1,
		ProductID:    10,
		Date:         testDate,
		StepMinutes:  step,
	}
}

func pastClock() fixedClock {
	return fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestGetAvailability_ExpedienteConfigurado(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "12:00", true)

	uc := NewGetAvailability(repo, nil, pastClock())

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, "10:00", slots[0].Time.Format("15:04"))
	assert.Equal(t, "11:30", slots[3].Time.Format("15:04"))
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailability_JanelaPadraoSemRegistro(t *testing.T) {
	repo := newFakeRepo() // nenhum expediente cadastrado

	uc := NewGetAvailability(repo, nil, pastClock())

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)
	require.Len(t, slots, 20) // 10:00–20:00
}

func TestGetAvailability_DiaInativo(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "20:00", false)

	uc := NewGetAvailability(repo, nil, pastClock())

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_AgendamentoOcupaSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "12:00", true)
	repo.addAppointment(
		testDate.Add(10*time.Hour+30*time.Minute),
		testDate.Add(11*time.Hour+30*time.Minute),
		"scheduled",
	)

	uc := NewGetAvailability(repo, nil, pastClock())

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.True(t, slots[0].Available)  // 10:00
	assert.False(t, slots[1].Available) // 10:30
	assert.False(t, slots[2].Available) // 11:00
	assert.True(t, slots[3].Available)  // 11:30 — fim exclusivo
}

func TestGetAvailability_CanceladoNaoOcupa(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "12:00", true)
	repo.addAppointment(
		testDate.Add(10*time.Hour+30*time.Minute),
		testDate.Add(11*time.Hour),
		"cancelled",
	)

	uc := NewGetAvailability(repo, nil, pastClock())

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailability_BloqueioEfetivo(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "12:00", true)

	d := testDate
	repo.blocks = []models.Block{
		{BarberID: 1, Date: &d, StartTime: "11:00", EndTime: "11:30", Reason: "compromisso"},
	}

	uc := NewGetAvailability(repo, nil, pastClock())

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.True(t, slots[1].Available)
	assert.False(t, slots[2].Available) // 11:00 bloqueado
	assert.True(t, slots[2].Blocked)
}

func TestGetAvailability_BloqueioRecorrente(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "12:00", true)

	saturday := int(time.Saturday)
	monday := int(time.Monday)
	repo.blocks = []models.Block{
		{BarberID: 1, Weekday: &saturday, StartTime: "10:00", EndTime: "10:30", Reason: "limpeza"},
		{BarberID: 1, Weekday: &monday, StartTime: "11:00", EndTime: "11:30"},
		// degenerado: sem data e sem weekday — nunca efetivo
		{BarberID: 1, StartTime: "11:30", EndTime: "12:00"},
	}

	uc := NewGetAvailability(repo, nil, pastClock())

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)

	assert.False(t, slots[0].Available) // bloqueio do sábado
	assert.True(t, slots[2].Available)  // bloqueio é de segunda
	assert.True(t, slots[3].Available)  // bloqueio degenerado ignorado
}

func TestGetAvailability_PassoParametrizado(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "11:00", true)

	uc := NewGetAvailability(repo, nil, pastClock())

	slots15, err := uc.Execute(context.Background(), availInput(15))
	require.NoError(t, err)
	assert.Len(t, slots15, 4)

	slots30, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)
	assert.Len(t, slots30, 2)

	// passo omitido cai no padrão de 30
	slotsDefault, err := uc.Execute(context.Background(), availInput(0))
	require.NoError(t, err)
	assert.Len(t, slotsDefault, 2)
}

func TestGetAvailability_FalhaDeLeituraPropaga(t *testing.T) {
	repo := newFakeRepo()
	repo.hoursErr = errors.New("conexão recusada")

	uc := NewGetAvailability(repo, nil, pastClock())

	// falha de infraestrutura não pode virar a janela padrão 10:00–20:00
	slots, err := uc.Execute(context.Background(), availInput(30))
	require.ErrorIs(t, err, repo.hoursErr)
	assert.Nil(t, slots)
}

func TestGetAvailability_ExpedienteCorrompido(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "9h00", "12:00", true)

	uc := NewGetAvailability(repo, nil, pastClock())

	_, err := uc.Execute(context.Background(), availInput(30))
	assert.Error(t, err)
}

func TestGetAvailability_ProdutoInexistente(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil, pastClock())

	in := availInput(30)
	in.ProductID = 999

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))
}

func TestGetAvailability_HorarioPassadoHoje(t *testing.T) {
	repo := newFakeRepo()
	repo.setHours(int(time.Saturday), "10:00", "12:00", true)

	// hoje às 10:45
	clock := fixedClock{now: testDate.Add(10*time.Hour + 45*time.Minute)}
	uc := NewGetAvailability(repo, nil, clock)

	slots, err := uc.Execute(context.Background(), availInput(30))
	require.NoError(t, err)

	assert.False(t, slots[0].Available) // 10:00
	assert.False(t, slots[1].Available) // 10:30
	assert.True(t, slots[2].Available)  // 11:00
}
