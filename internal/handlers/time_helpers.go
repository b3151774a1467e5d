package handlers

import (
	"time"

	"github.com/NavalhaDigital/barber-agenda/internal/models"
	"github.com/NavalhaDigital/barber-agenda/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por barbearia
// --------------------------------------------------

func locationFromShop(shop *models.Barbershop) *time.Location {
	if shop == nil {
		return timezone.Location("")
	}
	return timezone.Location(shop.Timezone)
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}
