package validators

import "time"

// IsHHMM valida horários no formato "15:04" usados por expediente e
// bloqueios.
func IsHHMM(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
