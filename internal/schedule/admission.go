package schedule

import "time"

// ===============================
// Admissão de agendamento
// ===============================
//
// A lista de slots renderizada para o cliente é apenas consultiva:
// entre a renderização e o envio, outro agendamento pode ter sido
// admitido. Admit é a decisão autoritativa, e deve sempre receber
// uma leitura FRESCA dos agendamentos do dia — nunca o snapshot
// usado para desenhar a tela.

type Reason string

const (
	ReasonScheduleInactive Reason = "schedule_inactive"
	ReasonOutsideHours     Reason = "outside_working_hours"
	ReasonPastTime         Reason = "past_time"
	ReasonSlotBlocked      Reason = "slot_blocked"
	ReasonSlotTaken        Reason = "slot_taken"
)

// Decision é o resultado da admissão. Quando a recusa vem de um
// conflito com agendamento existente, Conflict o identifica.
type Decision struct {
	OK       bool
	Reason   Reason
	Conflict *Booked
}

func admitted() Decision {
	return Decision{OK: true}
}

func rejected(r Reason) Decision {
	return Decision{Reason: r}
}

// Admit decide se o pedido [start, start+duration) pode ser aceito.
// live deve conter todos os agendamentos não cancelados do barbeiro
// no dia, lidos no momento da admissão.
func Admit(
	start time.Time,
	duration time.Duration,
	day DayWindow,
	blocks []Window,
	live []Booked,
	now time.Time,
) Decision {

	if !day.Active {
		return rejected(ReasonScheduleInactive)
	}

	end := start.Add(duration)

	if start.Before(day.Start) || end.After(day.End) {
		return rejected(ReasonOutsideHours)
	}

	if start.Before(now.Truncate(time.Minute)) {
		return rejected(ReasonPastTime)
	}

	for _, w := range blocks {
		if Overlaps(start, end, w.Start, w.End) {
			return rejected(ReasonSlotBlocked)
		}
	}

	for i := range live {
		if Overlaps(start, end, live[i].Start, live[i].End) {
			d := rejected(ReasonSlotTaken)
			d.Conflict = &live[i]
			return d
		}
	}

	return admitted()
}

// WalkInConflict é a variante usada no atendimento por ordem de
// chegada: em vez de recusar, devolve o agendamento conflitante para
// que o atendente decida (o cliente anterior pode estar atrasando).
// Retorna nil quando não há conflito.
func WalkInConflict(start time.Time, duration time.Duration, live []Booked) *Booked {
	end := start.Add(duration)
	for i := range live {
		if Overlaps(start, end, live[i].Start, live[i].End) {
			return &live[i]
		}
	}
	return nil
}
