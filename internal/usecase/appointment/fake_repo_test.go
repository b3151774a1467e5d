package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
)

// fakeRepo implementa o port de repositório em memória para os testes
// de caso de uso; o comportamento de conflito espelha o adapter GORM.
type fakeRepo struct {
	shop     models.Barbershop
	products map[uint]models.BarberProduct
	hours    map[int]models.WorkingHours // por weekday
	blocks   []models.Block

	appointments []models.Appointment
	nextID       uint
	clients      []models.Client

	// erros injetáveis para simular falhas de infraestrutura
	hoursErr  error
	clientErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: models.Barbershop{
			ID:       1,
			Name:     "Barbearia Teste",
			Slug:     "teste",
			Timezone: "UTC",
		},
		products: map[uint]models.BarberProduct{
			10: {ID: 10, BarbershopID: 1, Name: "Corte", DurationMin: 30, Price: 50},
			11: {ID: 11, BarbershopID: 1, Name: "Corte + Barba", DurationMin: 60, Price: 80},
		},
		hours:  map[int]models.WorkingHours{},
		nextID: 1,
	}
}

func (f *fakeRepo) setHours(weekday int, start, end string, active bool) {
	f.hours[weekday] = models.WorkingHours{
		BarberID:  1,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Active:    active,
	}
}

func (f *fakeRepo) addAppointment(start, end time.Time, status string) uint {
	id := f.nextID
	f.nextID++
	f.appointments = append(f.appointments, models.Appointment{
		ID:           id,
		BarbershopID: 1,
		BarberID:     1,
		StartTime:    start,
		EndTime:      end,
		Status:       status,
	})
	return id
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != f.shop.ID {
		return nil, gorm.ErrRecordNotFound
	}
	return &f.shop, nil
}

func (f *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if slug != f.shop.Slug {
		return nil, gorm.ErrRecordNotFound
	}
	return &f.shop, nil
}

func (f *fakeRepo) GetProduct(_ context.Context, barbershopID, productID uint) (*models.BarberProduct, error) {
	p, ok := f.products[productID]
	if !ok || p.BarbershopID != barbershopID {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	for i := range f.clients {
		if f.clients[i].Phone == phone {
			return &f.clients[i], nil
		}
	}
	c := models.Client{
		ID:           uint(len(f.clients) + 1),
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}
	f.clients = append(f.clients, c)
	return &c, nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	if f.hoursErr != nil {
		return nil, f.hoursErr
	}
	wh, ok := f.hours[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &wh, nil
}

func (f *fakeRepo) ListBlocks(_ context.Context, _ uint) ([]models.Block, error) {
	return f.blocks, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, _ uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status == "cancelled" {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointmentAdmitted(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.Status == "cancelled" {
			continue
		}
		if schedule.Overlaps(ap.StartTime, ap.EndTime, existing.StartTime, existing.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return f.CreateAppointmentForced(nil, ap)
}

func (f *fakeRepo) CreateAppointmentForced(_ context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, _ uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID {
			return &f.appointments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetAppointmentByReference(_ context.Context, _ uint, reference string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].Reference == reference {
			return &f.appointments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, _ uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func blockRow(barberID uint, weekday *int, start, end string) models.Block {
	return models.Block{
		BarberID:  barberID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
	}
}

// fixedClock congela "agora" para exercitar a regra de horário passado.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
