package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/barber-agenda/internal/cache"
	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/httpresp"
	"github.com/NavalhaDigital/barber-agenda/internal/middleware"
	"github.com/NavalhaDigital/barber-agenda/internal/models"
	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
	"github.com/NavalhaDigital/barber-agenda/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BlockHandler struct {
	db    *gorm.DB
	cache *cache.AvailabilityCache
}

func NewBlockHandler(db *gorm.DB, avCache *cache.AvailabilityCache) *BlockHandler {
	return &BlockHandler{db: db, cache: avCache}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockRequest struct {
	Reason string `json:"reason"`

	Date    *string `json:"date"`    // YYYY-MM-DD → bloqueio avulso
	Weekday *int    `json:"weekday"` // 0..6 → bloqueio recorrente

	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *BlockHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var blocks []models.Block
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}

	httpresp.List(c, blocks)
}

// ======================================================
// CREATE (com aviso de conflito)
// ======================================================

func (h *BlockHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// exatamente um escopo: avulso OU recorrente
	if (req.Date == nil) == (req.Weekday == nil) {
		httperr.BadRequest(c, "invalid_block_scope", "Informe data OU dia da semana, nunca os dois.")
		return
	}

	if req.Weekday != nil && (*req.Weekday < 0 || *req.Weekday > 6) {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	if !validators.IsHHMM(req.StartTime) || !validators.IsHHMM(req.EndTime) {
		httperr.BadRequest(c, "invalid_time_format", "Horário deve estar no formato HH:mm.")
		return
	}
	if req.StartTime >= req.EndTime {
		httperr.BadRequest(c, "start_after_end", "Início deve ser antes do fim.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	block := models.Block{
		BarberID:  barberID,
		Reason:    req.Reason,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if req.Date != nil {
		date, err := parseDateInShop(&shop, *req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		block.Date = &date
	}

	warnings, err := h.conflictingAppointments(&shop, barberID, &block)
	if err != nil {
		httperr.Internal(c, "failed_to_check_conflicts", "Erro ao verificar conflitos.")
		return
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	h.invalidate(c, barberID, &block)

	writeAudit(h.db, barbershopID, &barberID, "block_created", "block", &block.ID, gin.H{
		"start":     block.StartTime,
		"end":       block.EndTime,
		"conflicts": len(warnings),
	})

	c.JSON(http.StatusCreated, gin.H{
		"block":    block,
		"warnings": warnings,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var block models.Block
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&block).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_block", "Erro ao buscar bloqueio.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}

	h.invalidate(c, barberID, &block)

	writeAudit(h.db, barbershopID, &barberID, "block_deleted", "block", &block.ID, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

// conflictingAppointments lista os agendamentos vivos que o bloqueio
// novo atropela. O bloqueio é criado mesmo assim: quem decide o que
// fazer com cada cliente é o barbeiro, o aviso só dá visibilidade.
func (h *BlockHandler) conflictingAppointments(
	shop *models.Barbershop,
	barberID uint,
	block *models.Block,
) ([]models.Appointment, error) {

	loc := locationFromShop(shop)
	now := time.Now().In(loc)

	// bloqueio avulso: só o próprio dia. Recorrente: as próximas 8
	// semanas dão visibilidade suficiente para reagendar.
	horizon := now.AddDate(0, 0, 7*8)

	var candidates []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("BarberProduct").
		Where(
			"barber_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			barberID,
			[]string{
				string(domain.StatusScheduled),
				string(domain.StatusWaiting),
				string(domain.StatusInService),
			},
			now, horizon,
		).
		Order("start_time ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	anchor := func(day time.Time, hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
	}

	var conflicts []models.Appointment
	for _, ap := range candidates {
		day := ap.StartTime.In(loc)

		if !schedule.BlockEffectiveOn(day, block.Date, block.Weekday) {
			continue
		}

		bStart := anchor(day, block.StartTime)
		bEnd := anchor(day, block.EndTime)

		if schedule.Overlaps(ap.StartTime, ap.EndTime, bStart, bEnd) {
			conflicts = append(conflicts, ap)
		}
	}

	return conflicts, nil
}

func (h *BlockHandler) invalidate(c *gin.Context, barberID uint, block *models.Block) {
	if block.Date != nil {
		h.cache.InvalidateDay(c.Request.Context(), barberID, block.Date.Format("2006-01-02"))
		return
	}
	h.cache.InvalidateBarber(c.Request.Context(), barberID)
}
