package schedule

import "time"

// ===============================
// Predicados de intervalo
// ===============================
//
// Todos os intervalos do sistema são semiabertos: [start, end).
// Um horário igual ao fim de um intervalo NÃO pertence a ele.

// Within informa se t está dentro de [start, end).
func Within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// Overlaps informa se [aStart, aEnd) e [bStart, bEnd) compartilham
// algum instante. Esta é a ÚNICA fórmula de sobreposição do sistema;
// qualquer verificação de conflito passa por aqui.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
