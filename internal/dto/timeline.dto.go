package dto

import "time"

// Estados de um slot na linha do tempo do painel do barbeiro.
const (
	TimelineFree    = "free"
	TimelinePast    = "past"
	TimelineBlocked = "blocked"
	TimelineBooked  = "booked"
)

// TimelineSlot é um item da agenda do dia. Slots no MEIO de um
// agendamento longo não aparecem: o agendamento ocupa visualmente o
// espaço a partir do slot do seu início.
type TimelineSlot struct {
	Time        time.Time           `json:"time"`
	Status      string              `json:"status"`
	Appointment *AppointmentListDTO `json:"appointment,omitempty"`
}
