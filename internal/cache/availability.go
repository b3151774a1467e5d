package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NavalhaDigital/barber-agenda/internal/schedule"
)

// AvailabilityCache guarda a resposta renderizada de disponibilidade.
// É usado SOMENTE no caminho consultivo (GET de slots); a admissão
// sempre relê o banco. Qualquer escrita de agenda do barbeiro
// invalida o dia.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New retorna nil quando não há Redis configurado; todos os métodos
// aceitam receiver nil e viram no-op.
func New(addr string) *AvailabilityCache {
	if addr == "" {
		return nil
	}

	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 60 * time.Second,
	}
}

func dayPrefix(barberID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", barberID, date)
}

func slotKey(barberID uint, date string, step int) string {
	return fmt.Sprintf("%s:%d", dayPrefix(barberID, date), step)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID uint,
	date string,
	step int,
) ([]schedule.Slot, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barberID, date, step)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID uint,
	date string,
	step int,
	slots []schedule.Slot,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	// cache é melhor esforço: erro de escrita não interrompe a resposta
	c.rdb.Set(ctx, slotKey(barberID, date, step), raw, c.ttl)
}

func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	barberID uint,
	date string,
) {

	if c == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, dayPrefix(barberID, date)+":*", 50).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}

// InvalidateBarber derruba todos os dias de um barbeiro — usado quando
// expediente ou bloqueio recorrente muda e afeta datas arbitrárias.
func (c *AvailabilityCache) InvalidateBarber(ctx context.Context, barberID uint) {
	if c == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("avail:%d:*", barberID), 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
