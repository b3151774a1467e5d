package appointment

import (
	"context"
	"time"

	"github.com/NavalhaDigital/barber-agenda/internal/cache"
	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
	"github.com/NavalhaDigital/barber-agenda/internal/timezone"
)

const DefaultStepMinutes = 30

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	clock schedule.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	avCache *cache.AvailabilityCache,
	clock schedule.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: avCache,
		clock: clock,
	}
}

// Execute monta a lista consultiva de slots do dia. O resultado pode
// vir do cache: ele nunca alimenta a admissão, só a renderização.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]schedule.Slot, error) {

	if _, err := uc.repo.GetProduct(ctx, in.BarbershopID, in.ProductID); err != nil {
		return nil, httperr.ErrBusiness("product_not_found")
	}

	step := in.StepMinutes
	if step <= 0 {
		step = DefaultStepMinutes
	}

	dateKey := in.Date.Format("2006-01-02")
	if slots, ok := uc.cache.Get(ctx, in.BarberID, dateKey, step); ok {
		return slots, nil
	}

	day, err := loadDayWindow(ctx, uc.repo, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	blocks, err := loadEffectiveBlocks(ctx, uc.repo, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	booked, err := loadBookedDay(ctx, uc.repo, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now().In(timezone.Location(shop.Timezone))

	slots := schedule.ResolveSlots(
		day,
		blocks,
		booked,
		time.Duration(step)*time.Minute,
		now,
	)

	uc.cache.Set(ctx, in.BarberID, dateKey, step, slots)

	return slots, nil
}
