package schedule

import "time"

// Grid gera a sequência ordenada de horários candidatos em
// [start, end), com passo fixo. Se start >= end ou o passo for
// inválido, retorna vazio — o chamador trata como "dia fechado".
func Grid(start, end time.Time, step time.Duration) []time.Time {
	if step <= 0 || !start.Before(end) {
		return nil
	}

	var out []time.Time
	for t := start; t.Before(end); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}
