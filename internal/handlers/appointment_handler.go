package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/middleware"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
	"github.com/NavalhaDigital/barber-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC   *appointment.CreateBooking
	walkInUC   *appointment.CreateWalkIn
	statusUC   *appointment.ChangeStatus
	listUC     *appointment.ListAppointments
	timelineUC *appointment.GetDayTimeline
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *appointment.CreateBooking,
	walkInUC *appointment.CreateWalkIn,
	statusUC *appointment.ChangeStatus,
	listUC *appointment.ListAppointments,
	timelineUC *appointment.GetDayTimeline,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		createUC:   createUC,
		walkInUC:   walkInUC,
		statusUC:   statusUC,
		listUC:     listUC,
		timelineUC: timelineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ProductID   uint   `json:"product_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type CreateWalkInRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ProductID   uint   `json:"product_id" binding:"required"`
	Notes       string `json:"notes"`
	Force       bool   `json:"force"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapCreateErrors converte os códigos de negócio da admissão em
// respostas HTTP. Compartilhado pelo booking público e pelo privado.
func mapCreateErrors(c *gin.Context, err error) {
	for _, code := range []string{
		"invalid_date_or_time",
		"too_soon",
		"product_not_found",
		"schedule_inactive",
		"outside_working_hours",
		"past_time",
		"slot_blocked",
		"time_conflict",
	} {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, "Horário indisponível.")
			return
		}
	}

	httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
}

// ======================================================
// CREATE (BARBEIRO)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		appointment.CreateBookingInput{
			BarbershopID: barbershopID,
			BarberID:     barberID,
			ClientName:   req.ClientName,
			ClientPhone:  req.ClientPhone,
			ClientEmail:  req.ClientEmail,
			ProductID:    req.ProductID,
			Date:         req.Date,
			Time:         req.Time,
			Notes:        req.Notes,
			// o barbeiro pode encaixar para daqui a pouco
			EnforceMinAdvance: false,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// WALK-IN (BALCÃO)
// ======================================================

func (h *AppointmentHandler) CreateWalkIn(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateWalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.walkInUC.Execute(
		c.Request.Context(),
		appointment.CreateWalkInInput{
			BarbershopID: barbershopID,
			BarberID:     barberID,
			ClientName:   req.ClientName,
			ClientPhone:  req.ClientPhone,
			ClientEmail:  req.ClientEmail,
			ProductID:    req.ProductID,
			Notes:        req.Notes,
			Force:        req.Force,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	// conflito sem force: 409 com o agendamento atropelado, para o
	// atendente decidir se confirma com force=true
	if result.Conflict != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error_code": "walkin_conflict",
			"message":    "Horário em uso.",
			"conflict":   result.Conflict,
		})
		return
	}

	c.JSON(http.StatusCreated, result.Appointment)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	_, date, ok := h.shopAndDate(c, barbershopID, dateStr)
	if !ok {
		return
	}

	aps, err := h.listUC.ByDate(c.Request.Context(), barberID, barbershopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	aps, err := h.listUC.ByMonth(c.Request.Context(), barberID, barbershopID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// TIMELINE (PAINEL DO DIA)
// ======================================================

func (h *AppointmentHandler) Timeline(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	_, date, ok := h.shopAndDate(c, barbershopID, dateStr)
	if !ok {
		return
	}

	timeline, err := h.timelineUC.Execute(c.Request.Context(), barbershopID, barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_build_timeline", "Erro ao montar a agenda do dia.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     dateStr,
		"timeline": timeline,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) CheckIn(c *gin.Context) {
	h.changeStatus(c, h.statusUC.CheckIn)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.changeStatus(c, h.statusUC.Start)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.statusUC.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.statusUC.Cancel)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) changeStatus(
	c *gin.Context,
	action func(ctx context.Context, barbershopID, barberID, appointmentID uint) (*models.Appointment, error),
) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := action(c.Request.Context(), barbershopID, barberID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) shopAndDate(
	c *gin.Context,
	barbershopID uint,
	dateStr string,
) (*models.Barbershop, time.Time, bool) {

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, time.Time{}, false
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return nil, time.Time{}, false
	}

	return &shop, date, true
}

func parseYearMonth(c *gin.Context) (int, int, bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return 0, 0, false
	}

	return year, month, true
}
