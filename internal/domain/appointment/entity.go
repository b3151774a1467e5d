package appointment

import (
	"time"

	"github.com/NavalhaDigital/barber-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func MarkWaiting(ap *models.Appointment) error {
	if err := CanMarkWaiting(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusWaiting)
	return nil
}

func Start(ap *models.Appointment, now time.Time) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusInService)
	ap.StartedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
