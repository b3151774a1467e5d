package appointment

import (
	"context"
	"time"

	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/dto"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
	"github.com/NavalhaDigital/barber-agenda/internal/timezone"
)

// passo fino do painel: um corte a cada 15 minutos
const timelineStepMinutes = 15

type GetDayTimeline struct {
	repo  domain.Repository
	clock schedule.Clock
}

func NewGetDayTimeline(repo domain.Repository, clock schedule.Clock) *GetDayTimeline {
	return &GetDayTimeline{repo: repo, clock: clock}
}

// Execute monta a agenda do dia para o painel do barbeiro. O resolver
// marca ocupado em todos os cortes cobertos por um agendamento; aqui
// aplicamos a regra de apresentação: cada agendamento aparece uma
// única vez (com os dados dele), os demais cortes cobertos são
// suprimidos para não desenhar fragmentos.
func (uc *GetDayTimeline) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	date time.Time,
) ([]dto.TimelineSlot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	day, err := loadDayWindow(ctx, uc.repo, barberID, date)
	if err != nil {
		return nil, err
	}

	blocks, err := loadEffectiveBlocks(ctx, uc.repo, barberID, date)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBounds(date)
	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.Booked, 0, len(appointments))
	listed := make([]dto.AppointmentListDTO, 0, len(appointments))

	for i := range appointments {
		ap := &appointments[i]
		if !domain.OccupiesSlot(domain.Status(ap.Status)) {
			continue
		}

		booked = append(booked, schedule.Booked{
			ID:    ap.ID,
			Start: ap.StartTime,
			End:   ap.EndTime,
		})

		listed = append(listed, dto.AppointmentListDTO{
			ID:          ap.ID,
			Reference:   ap.Reference,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			DurationMin: ap.DurationMin,
			Amount:      ap.Amount,
			Status:      ap.Status,
			Origin:      ap.Origin,
			ClientName:  ap.Client.Name,
			ProductName: ap.BarberProduct.Name,
		})
	}

	now := uc.clock.Now().In(timezone.Location(shop.Timezone))

	slots := schedule.ResolveSlots(
		day,
		blocks,
		booked,
		timelineStepMinutes*time.Minute,
		now,
	)

	// cada agendamento aparece uma única vez, no primeiro corte que
	// cobre; os demais cortes cobertos são suprimidos para não
	// desenhar fragmentos. Um encaixe forçado pode começar fora da
	// grade, por isso "primeiro corte coberto" e não "corte do início".
	emitted := make(map[uint]bool, len(listed))

	timeline := make([]dto.TimelineSlot, 0, len(slots))
	for _, s := range slots {
		if s.Occupied {
			var ap *dto.AppointmentListDTO
			for i := range listed {
				if schedule.Within(s.Time, listed[i].StartTime, listed[i].EndTime) {
					ap = &listed[i]
					break
				}
			}

			if ap == nil || emitted[ap.ID] {
				// corte interno de um agendamento longo
				continue
			}
			emitted[ap.ID] = true

			timeline = append(timeline, dto.TimelineSlot{
				Time:        s.Time,
				Status:      dto.TimelineBooked,
				Appointment: ap,
			})
			continue
		}

		status := dto.TimelineFree
		switch {
		case s.Blocked:
			status = dto.TimelineBlocked
		case s.Past:
			status = dto.TimelinePast
		}

		timeline = append(timeline, dto.TimelineSlot{
			Time:   s.Time,
			Status: status,
		})
	}

	return timeline, nil
}
