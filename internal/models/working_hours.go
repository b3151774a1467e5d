package models

import "time"

// Um registro por (barbeiro, dia da semana). Pausas (almoço etc.)
// são bloqueios recorrentes, não colunas daqui.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_wh_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_wh_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"` // "09:00"
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
