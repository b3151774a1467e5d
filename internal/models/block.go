package models

import "time"

// Block é uma janela de indisponibilidade do barbeiro: ou avulsa
// (Date preenchido) ou recorrente (Weekday preenchido). Exatamente um
// dos dois — a API recusa registros fora disso. Bloqueios não são
// editados, apenas criados e removidos.
type Block struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	Reason string `gorm:"size:100" json:"reason"`

	Date    *time.Time `gorm:"type:date" json:"date"`
	Weekday *int       `json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"` // "12:00"
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}
