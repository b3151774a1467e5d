package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NavalhaDigital/barber-agenda/internal/httperr"
	"github.com/NavalhaDigital/barber-agenda/internal/middleware"
	"github.com/NavalhaDigital/barber-agenda/internal/usecase/report"
)

type ReportHandler struct {
	revenueUC *report.Revenue
}

func NewReportHandler(revenueUC *report.Revenue) *ReportHandler {
	return &ReportHandler{revenueUC: revenueUC}
}

func (h *ReportHandler) Revenue(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	summary, err := h.revenueUC.Execute(c.Request.Context(), barbershopID, barberID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar o relatório.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
