package appointment

import (
	"context"
	"time"

	"github.com/NavalhaDigital/barber-agenda/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Product --------
	GetProduct(
		ctx context.Context,
		barbershopID uint,
		productID uint,
	) (*models.BarberProduct, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Snapshot do dia (expediente / bloqueios / agenda) --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListBlocks(
		ctx context.Context,
		barberID uint,
	) ([]models.Block, error)

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentAdmitted insere dentro de uma transação com a
	// releitura travada dos agendamentos do dia: é a verificação
	// autoritativa da admissão, nunca o snapshot da renderização.
	// Retorna o erro de negócio "time_conflict" em sobreposição.
	CreateAppointmentAdmitted(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CreateAppointmentForced insere sem verificação de conflito
	// (encaixe de balcão confirmado pelo atendente).
	CreateAppointmentForced(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / lookup) --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	GetAppointmentByReference(
		ctx context.Context,
		barbershopID uint,
		reference string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listagens --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
