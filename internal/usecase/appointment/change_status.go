package appointment

import (
	"context"
	"time"

	"github.com/NavalhaDigital/barber-agenda/internal/audit"
	"github.com/NavalhaDigital/barber-agenda/internal/cache"
	domainap "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
	"github.com/NavalhaDigital/barber-agenda/internal/timezone"
)

// ======================================================
// Transições de estado (iniciar / concluir / cancelar)
// ======================================================
//
// O mesmo esqueleto para as três ações: carregar, aplicar a ação de
// domínio, salvar, auditar. Só o cancelamento mexe em disponibilidade,
// então só ele invalida o cache do dia.

type ChangeStatus struct {
	repo  domainap.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	clock schedule.Clock
}

func NewChangeStatus(
	repo domainap.Repository,
	auditDisp *audit.Dispatcher,
	avCache *cache.AvailabilityCache,
	clock schedule.Clock,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: auditDisp,
		cache: avCache,
		clock: clock,
	}
}

// shopDay devolve a data do instante no fuso da barbearia. As chaves
// do cache de disponibilidade são sempre a data local da loja; perto
// da meia-noite UTC a data crua diverge da chave gravada na criação.
func shopDay(t time.Time, tz string) string {
	return t.In(timezone.Location(tz)).Format("2006-01-02")
}

func (uc *ChangeStatus) Start(
	ctx context.Context,
	barbershopID, barberID, appointmentID uint,
) (*models.Appointment, error) {
	ap, _, err := uc.apply(ctx, barbershopID, barberID, appointmentID, "appointment_started", domainap.Start)
	return ap, err
}

// CheckIn marca o cliente como chegado (fila de espera).
func (uc *ChangeStatus) CheckIn(
	ctx context.Context,
	barbershopID, barberID, appointmentID uint,
) (*models.Appointment, error) {
	ap, _, err := uc.apply(ctx, barbershopID, barberID, appointmentID, "appointment_waiting",
		func(ap *models.Appointment, _ time.Time) error {
			return domainap.MarkWaiting(ap)
		})
	return ap, err
}

func (uc *ChangeStatus) Complete(
	ctx context.Context,
	barbershopID, barberID, appointmentID uint,
) (*models.Appointment, error) {
	ap, _, err := uc.apply(ctx, barbershopID, barberID, appointmentID, "appointment_completed", domainap.Complete)
	return ap, err
}

func (uc *ChangeStatus) Cancel(
	ctx context.Context,
	barbershopID, barberID, appointmentID uint,
) (*models.Appointment, error) {

	ap, shop, err := uc.apply(ctx, barbershopID, barberID, appointmentID, "appointment_cancelled", domainap.Cancel)
	if err != nil {
		return nil, err
	}

	// cancelamento libera o horário; a chave é a data local da loja
	uc.cache.InvalidateDay(ctx, barberID, shopDay(ap.StartTime, shop.Timezone))

	return ap, nil
}

func (uc *ChangeStatus) apply(
	ctx context.Context,
	barbershopID, barberID, appointmentID uint,
	action string,
	transition func(*models.Appointment, time.Time) error,
) (*models.Appointment, *models.Barbershop, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, nil, err
	}

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := uc.clock.Now().In(timezone.Location(shop.Timezone))
	if err := transition(ap, now); err != nil {
		return nil, nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       action,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, shop, nil
}
