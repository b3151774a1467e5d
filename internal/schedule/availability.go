package schedule

import "time"

// Slot é um horário candidato do dia, com o veredito de
// disponibilidade e os sinais que o produziram.
type Slot struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
	Occupied  bool      `json:"occupied"`
	Blocked   bool      `json:"blocked"`
	Past      bool      `json:"past"`
}

// ResolveSlots calcula os horários agendáveis de um barbeiro em um dia.
//
// Regras:
//   - expediente inativo → nenhum slot, independentemente do resto;
//   - ocupado: o horário cai dentro de [início, fim) de um agendamento;
//   - bloqueado: o horário cai dentro de um bloqueio efetivo do dia;
//   - passado: estritamente antes de "agora" truncado ao minuto — um
//     slot exatamente igual a "agora" ainda é agendável.
//
// A saída é sempre em ordem crescente de horário. Função pura:
// mesmas entradas, mesma saída.
func ResolveSlots(
	day DayWindow,
	blocks []Window,
	booked []Booked,
	step time.Duration,
	now time.Time,
) []Slot {

	if !day.Active {
		return nil
	}

	cutoff := now.Truncate(time.Minute)

	var slots []Slot
	for _, t := range Grid(day.Start, day.End, step) {

		occupied := false
		for _, b := range booked {
			if Within(t, b.Start, b.End) {
				occupied = true
				break
			}
		}

		blocked := false
		for _, w := range blocks {
			if Within(t, w.Start, w.End) {
				blocked = true
				break
			}
		}

		past := t.Before(cutoff)

		slots = append(slots, Slot{
			Time:      t,
			Available: !occupied && !blocked && !past,
			Occupied:  occupied,
			Blocked:   blocked,
			Past:      past,
		})
	}

	return slots
}
