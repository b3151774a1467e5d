package schedule

import "time"

// ===============================
// Snapshots de entrada
// ===============================
//
// O pacote schedule é puro: recebe leituras já feitas pelo chamador
// (expediente, bloqueios e agendamentos do dia) e nunca toca em I/O.

// DayWindow é o expediente efetivo do barbeiro no dia consultado,
// já ancorado na data/timezone da barbearia.
type DayWindow struct {
	Active bool
	Start  time.Time
	End    time.Time
}

// DefaultWindow é a janela usada quando o barbeiro nunca configurou
// expediente para o dia da semana: 10:00–20:00.
func DefaultWindow(date time.Time) DayWindow {
	return DayWindow{
		Active: true,
		Start:  time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, date.Location()),
		End:    time.Date(date.Year(), date.Month(), date.Day(), 20, 0, 0, 0, date.Location()),
	}
}

// Window é um bloqueio já resolvido para o dia consultado.
type Window struct {
	Start time.Time
	End   time.Time
}

// Booked é um agendamento não cancelado do dia.
type Booked struct {
	ID    uint
	Start time.Time
	End   time.Time
}

// BlockEffectiveOn decide se um bloqueio vale para a data consultada:
// ou a data específica bate, ou o dia da semana bate. Um bloqueio sem
// data e sem dia da semana é inválido e nunca é efetivo (a criação
// desse tipo de registro é rejeitada na API).
func BlockEffectiveOn(date time.Time, blockDate *time.Time, weekday *int) bool {
	if blockDate != nil {
		y1, m1, d1 := blockDate.Date()
		y2, m2, d2 := date.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	if weekday != nil {
		return *weekday == int(date.Weekday())
	}
	return false
}
