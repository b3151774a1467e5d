package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/barber-agenda/internal/config"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
)

// Guarda no nível do banco contra duas reservas online simultâneas
// para o mesmo horário. Colunas time.Time migram como timestamptz,
// então o range é tstzrange. Restrita a 'scheduled': encaixes
// forçados pelo atendente nascem 'in_service' e podem sobrepor por
// decisão humana.
const appointmentsNoOverlapDDL = `
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            barber_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        ) WHERE (status = 'scheduled')
    `

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.BarberProduct{},
		&models.WorkingHours{},
		&models.Block{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE barbershops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// A releitura travada na aplicação reduz a janela da corrida;
	// só a constraint a fecha.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`ALTER TABLE appointments DROP CONSTRAINT IF EXISTS appointments_no_overlap`)
	if err := db.Exec(appointmentsNoOverlapDDL).Error; err != nil {
		log.Fatalf("failed to create exclusion constraint: %v", err)
	}

	return db
}
