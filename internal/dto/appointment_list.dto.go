package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Origin      string    `json:"origin"`
	ClientName  string    `json:"client_name"`
	ProductName string    `json:"product_name"`
}
