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
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ProductID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	// Antecedência mínima vale para o cliente no booking público;
	// o barbeiro logado pode agendar para daqui a pouco.
	EnforceMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	clock schedule.Clock
}

func NewCreateBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	avCache *cache.AvailabilityCache,
	clock schedule.Clock,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: auditDisp,
		cache: avCache,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia e data/hora no timezone dela
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := uc.clock.Now().In(loc)

	// --------------------------------------------------
	// 2️⃣ Antecedência mínima (booking público)
	// --------------------------------------------------
	if in.EnforceMinAdvance {
		minAdvance := shop.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}

		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// 3️⃣ Serviço
	// --------------------------------------------------
	product, err := uc.repo.GetProduct(ctx, in.BarbershopID, in.ProductID)
	if err != nil {
		return nil, httperr.ErrBusiness("product_not_found")
	}

	duration := time.Duration(product.DurationMin) * time.Minute
	end := start.Add(duration)

	// --------------------------------------------------
	// 4️⃣ Admissão: leitura fresca + decisão do núcleo
	// --------------------------------------------------
	day, err := loadDayWindow(ctx, uc.repo, in.BarberID, start)
	if err != nil {
		return nil, err
	}

	blocks, err := loadEffectiveBlocks(ctx, uc.repo, in.BarberID, start)
	if err != nil {
		return nil, err
	}

	live, err := loadBookedDay(ctx, uc.repo, in.BarberID, start)
	if err != nil {
		return nil, err
	}

	if d := schedule.Admit(start, duration, day, blocks, live, now); !d.OK {
		return nil, admissionError(d.Reason)
	}

	// --------------------------------------------------
	// 5️⃣ Cliente (get or create)
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 6️⃣ Criação: releitura travada + constraint do banco
	// --------------------------------------------------
	ap := &models.Appointment{
		BarbershopID:    in.BarbershopID,
		BarberID:        in.BarberID,
		ClientID:        client.ID,
		BarberProductID: product.ID,
		StartTime:       start,
		EndTime:         end,
		DurationMin:     product.DurationMin,
		Amount:          product.Price,
		Status:          string(domain.InitialStatus(domain.OriginOnline)),
		Origin:          string(domain.OriginOnline),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointmentAdmitted(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			// a outra reserva venceu a corrida
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, in.BarberID, start.Format("2006-01-02"))

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

// admissionError traduz a recusa do núcleo para o código de negócio
// da API.
func admissionError(r schedule.Reason) error {
	switch r {
	case schedule.ReasonScheduleInactive:
		return httperr.ErrBusiness("schedule_inactive")
	case schedule.ReasonOutsideHours:
		return httperr.ErrBusiness("outside_working_hours")
	case schedule.ReasonPastTime:
		return httperr.ErrBusiness("past_time")
	case schedule.ReasonSlotBlocked:
		return httperr.ErrBusiness("slot_blocked")
	default:
		return httperr.ErrBusiness("time_conflict")
	}
}
