package appointment

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ProductID    uint
	Date         time.Time
	StepMinutes  int // 0 → 30
}
