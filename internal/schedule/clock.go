package schedule

import "time"

// Clock abstrai o relógio do sistema para que o cálculo de
// "horário já passou" seja testável de forma determinística.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
