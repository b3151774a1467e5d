package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlockEffectiveOn(t *testing.T) {
	saturday := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) // sábado
	otherDay := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	wdSaturday := int(time.Saturday)
	wdMonday := int(time.Monday)

	t.Run("data especifica", func(t *testing.T) {
		d := saturday
		assert.True(t, BlockEffectiveOn(saturday, &d, nil))
		assert.False(t, BlockEffectiveOn(otherDay, &d, nil))
	})

	t.Run("recorrente por dia da semana", func(t *testing.T) {
		assert.True(t, BlockEffectiveOn(saturday, nil, &wdSaturday))
		assert.False(t, BlockEffectiveOn(saturday, nil, &wdMonday))
	})

	t.Run("data tem precedencia sobre weekday", func(t *testing.T) {
		// registro degenerado com ambos: a data decide
		d := otherDay
		assert.False(t, BlockEffectiveOn(saturday, &d, &wdSaturday))
	})

	t.Run("sem data e sem weekday nunca e efetivo", func(t *testing.T) {
		assert.False(t, BlockEffectiveOn(saturday, nil, nil))
	})
}

func TestDefaultWindow(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)

	w := DefaultWindow(date)
	assert.True(t, w.Active)
	assert.Equal(t, 10, w.Start.Hour())
	assert.Equal(t, 20, w.End.Hour())
	assert.Equal(t, loc, w.Start.Location())
}
