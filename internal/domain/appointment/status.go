package appointment

import "github.com/NavalhaDigital/barber-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusWaiting   Status = "waiting"
	StatusInService Status = "in_service"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Origin string

const (
	OriginOnline Origin = "online"
	OriginWalkIn Origin = "walk_in"
)

// ===============================
// Validations
// ===============================

// agendado → (aguardando) → em atendimento → concluído;
// qualquer estado não terminal → cancelado.

func CanMarkWaiting(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanStart(current Status) error {
	if current != StatusScheduled && current != StatusWaiting {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusInService {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida o status de criação por origem: agendamento
// online nasce "scheduled"; encaixe de balcão já nasce em atendimento.
func InitialStatus(origin Origin) Status {
	if origin == OriginWalkIn {
		return StatusInService
	}
	return StatusScheduled
}

// OccupiesSlot informa se um agendamento neste status ainda conta
// para o invariante de não sobreposição. Só o cancelado libera o
// horário.
func OccupiesSlot(s Status) bool {
	return s != StatusCancelled
}
