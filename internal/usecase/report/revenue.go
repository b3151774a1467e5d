package report

import (
	"context"
	"sort"
	"time"

	domain "github.com/NavalhaDigital/barber-agenda/internal/domain/appointment"
	"github.com/NavalhaDigital/barber-agenda/internal/timezone"
)

// ======================================================
// Relatório de faturamento do mês
// ======================================================
//
// Só atendimentos concluídos contam como receita; cancelados e
// no-show ficam de fora dos totais, mas o resumo informa os volumes.

type DayRevenue struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Completed int     `json:"completed"`
	Amount    float64 `json:"amount"`
}

type ProductRevenue struct {
	ProductName string  `json:"product_name"`
	Completed   int     `json:"completed"`
	Amount      float64 `json:"amount"`
}

type RevenueSummary struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalAmount    float64 `json:"total_amount"`
	CompletedCount int     `json:"completed_count"`
	CancelledCount int     `json:"cancelled_count"`
	WalkInCount    int     `json:"walk_in_count"`

	ByDay     []DayRevenue     `json:"by_day"`
	ByProduct []ProductRevenue `json:"by_product"`
}

type Revenue struct {
	repo domain.Repository
}

func NewRevenue(repo domain.Repository) *Revenue {
	return &Revenue{repo: repo}
}

func (uc *Revenue) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	year int,
	month int,
) (*RevenueSummary, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &RevenueSummary{Year: year, Month: month}

	days := map[string]*DayRevenue{}
	products := map[string]*ProductRevenue{}

	for _, ap := range appointments {
		if ap.Origin == string(domain.OriginWalkIn) {
			summary.WalkInCount++
		}

		switch domain.Status(ap.Status) {
		case domain.StatusCancelled:
			summary.CancelledCount++
			continue
		case domain.StatusCompleted:
			// receita
		default:
			continue
		}

		summary.CompletedCount++
		summary.TotalAmount += ap.Amount

		dayKey := ap.StartTime.In(loc).Format("2006-01-02")
		d, ok := days[dayKey]
		if !ok {
			d = &DayRevenue{Date: dayKey}
			days[dayKey] = d
		}
		d.Completed++
		d.Amount += ap.Amount

		name := ap.BarberProduct.Name
		p, ok := products[name]
		if !ok {
			p = &ProductRevenue{ProductName: name}
			products[name] = p
		}
		p.Completed++
		p.Amount += ap.Amount
	}

	for _, d := range days {
		summary.ByDay = append(summary.ByDay, *d)
	}
	sort.Slice(summary.ByDay, func(i, j int) bool {
		return summary.ByDay[i].Date < summary.ByDay[j].Date
	})

	for _, p := range products {
		summary.ByProduct = append(summary.ByProduct, *p)
	}
	sort.Slice(summary.ByProduct, func(i, j int) bool {
		return summary.ByProduct[i].Amount > summary.ByProduct[j].Amount
	})

	return summary, nil
}
