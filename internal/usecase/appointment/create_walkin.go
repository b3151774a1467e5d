package appointment

import (
	"context"
	"time"

	"github.com/NavalhaDigital/barber-agenda/internal/audit"
	"github.com/NavalhaDigital/barber-agenda/internal/cache"
	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
	"github.com/NavalhaDigital/barber-agenda/internal/timezone"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type CreateWalkInInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ProductID uint
	Notes     string

	// Force admite mesmo com conflito — decisão do atendente
	// (o cliente anterior pode estar estourando o horário).
	Force bool
}

// WalkInResult: ou o agendamento criado, ou o conflito que exige
// confirmação humana. Conflito não é erro: é um aviso com identidade.
type WalkInResult struct {
	Appointment *models.Appointment
	Conflict    *models.Appointment
}

// ======================================================
// USE CASE
// ======================================================

type CreateWalkIn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	clock schedule.Clock
}

func NewCreateWalkIn(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	avCache *cache.AvailabilityCache,
	clock schedule.Clock,
) *CreateWalkIn {
	return &CreateWalkIn{
		repo:  repo,
		audit: auditDisp,
		cache: avCache,
		clock: clock,
	}
}

func (uc *CreateWalkIn) Execute(
	ctx context.Context,
	in CreateWalkInInput,
) (*WalkInResult, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	product, err := uc.repo.GetProduct(ctx, in.BarbershopID, in.ProductID)
	if err != nil {
		return nil, httperr.ErrBusiness("product_not_found")
	}

	// encaixe começa agora
	now := uc.clock.Now().In(timezone.Location(shop.Timezone))
	start := now.Truncate(time.Minute)
	duration := time.Duration(product.DurationMin) * time.Minute
	end := start.Add(duration)

	// --------------------------------------------------
	// Conflito: avisar, não recusar
	// --------------------------------------------------
	live, err := loadBookedDay(ctx, uc.repo, in.BarberID, start)
	if err != nil {
		return nil, err
	}

	if c := schedule.WalkInConflict(start, duration, live); c != nil && !in.Force {
		conflicting, err := uc.repo.GetAppointmentForBarber(ctx, c.ID, in.BarberID)
		if err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			BarbershopID: in.BarbershopID,
			UserID:       &in.BarberID,
			Action:       "walkin_conflict",
			Entity:       "appointment",
			EntityID:     &c.ID,
			Metadata: map[string]any{
				"start": start,
				"end":   end,
			},
		})

		return &WalkInResult{Conflict: conflicting}, nil
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarbershopID:    in.BarbershopID,
		BarberID:        in.BarberID,
		ClientID:        client.ID,
		BarberProductID: product.ID,
		StartTime:       start,
		EndTime:         end,
		DurationMin:     product.DurationMin,
		Amount:          product.Price,
		Status:          string(domain.InitialStatus(domain.OriginWalkIn)),
		Origin:          string(domain.OriginWalkIn),
		Notes:           in.Notes,
		StartedAt:       &start,
	}

	// Com force a inserção é incondicional; sem conflito detectado,
	// ainda passa pela releitura travada (outro balcão pode ter
	// acabado de encaixar).
	if in.Force {
		err = uc.repo.CreateAppointmentForced(ctx, ap)
	} else {
		err = uc.repo.CreateAppointmentAdmitted(ctx, ap)
	}
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.BarberID, start.Format("2006-01-02"))

	action := "walkin_created"
	if in.Force {
		action = "walkin_forced"
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       action,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return &WalkInResult{Appointment: ap}, nil
}
