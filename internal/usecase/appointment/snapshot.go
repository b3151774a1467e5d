package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
)

// ======================================================
// Snapshot do dia para o núcleo de agenda
// ======================================================
//
// Converte as linhas do banco (expediente, bloqueios, agendamentos)
// nos tipos puros do pacote schedule, ancorados na data/timezone da
// barbearia. Toda superfície de agendamento (booking online, encaixe
// de balcão, checagem de bloqueio) passa por aqui — é a única ponte
// entre a persistência e o algoritmo.

// parseHM ancora um HH:mm na data consultada. Horário ilegível num
// registro é erro, nunca uma âncora 00:00 fantasma.
func parseHM(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, fmt.Errorf("horário inválido %q: %w", hm, err)
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// loadDayWindow resolve o expediente efetivo: sem registro para o dia
// da semana → janela padrão 10:00–20:00; registro inativo ou sem
// horários → dia fechado.
func loadDayWindow(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	date time.Time,
) (schedule.DayWindow, error) {

	wh, err := repo.GetWorkingHours(ctx, barberID, int(date.Weekday()))
	if err != nil {
		// só a AUSÊNCIA do registro significa "nunca configurado";
		// falha de leitura propaga, nunca vira disponibilidade.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return schedule.DefaultWindow(date), nil
		}
		return schedule.DayWindow{}, err
	}

	if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return schedule.DayWindow{}, nil
	}

	start, err := parseHM(date, wh.StartTime)
	if err != nil {
		return schedule.DayWindow{}, err
	}

	end, err := parseHM(date, wh.EndTime)
	if err != nil {
		return schedule.DayWindow{}, err
	}

	return schedule.DayWindow{
		Active: true,
		Start:  start,
		End:    end,
	}, nil
}

// loadEffectiveBlocks filtra os bloqueios do barbeiro para os
// efetivos na data (data específica ou dia da semana) e os ancora
// no dia consultado.
func loadEffectiveBlocks(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	date time.Time,
) ([]schedule.Window, error) {

	blocks, err := repo.ListBlocks(ctx, barberID)
	if err != nil {
		return nil, err
	}

	var out []schedule.Window
	for _, b := range blocks {
		if !schedule.BlockEffectiveOn(date, b.Date, b.Weekday) {
			continue
		}

		start, err := parseHM(date, b.StartTime)
		if err != nil {
			return nil, err
		}

		end, err := parseHM(date, b.EndTime)
		if err != nil {
			return nil, err
		}

		out = append(out, schedule.Window{Start: start, End: end})
	}

	return out, nil
}

// loadBookedDay lê os agendamentos não cancelados do dia. Chamado no
// momento da admissão, é a leitura fresca exigida pelo controlador.
func loadBookedDay(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	date time.Time,
) ([]schedule.Booked, error) {

	dayStart, dayEnd := dayBounds(date)

	apps, err := repo.ListAppointmentsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.Booked, 0, len(apps))
	for _, ap := range apps {
		booked = append(booked, schedule.Booked{
			ID:    ap.ID,
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	return booked, nil
}
