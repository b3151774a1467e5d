package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	t.Run("passo de 30 minutos", func(t *testing.T) {
		got := Grid(at(10, 0), at(12, 0), 30*time.Minute)
		require.Len(t, got, 4)
		assert.Equal(t, at(10, 0), got[0])
		assert.Equal(t, at(10, 30), got[1])
		assert.Equal(t, at(11, 0), got[2])
		assert.Equal(t, at(11, 30), got[3])
	})

	t.Run("passo de 15 minutos", func(t *testing.T) {
		got := Grid(at(10, 0), at(11, 0), 15*time.Minute)
		require.Len(t, got, 4)
		assert.Equal(t, at(10, 45), got[3])
	})

	t.Run("fim e exclusivo", func(t *testing.T) {
		got := Grid(at(10, 0), at(11, 0), 30*time.Minute)
		for _, p := range got {
			assert.True(t, p.Before(at(11, 0)))
		}
	})

	t.Run("inicio igual ao fim", func(t *testing.T) {
		assert.Empty(t, Grid(at(10, 0), at(10, 0), 30*time.Minute))
	})

	t.Run("inicio depois do fim", func(t *testing.T) {
		assert.Empty(t, Grid(at(12, 0), at(10, 0), 30*time.Minute))
	})

	t.Run("passo invalido", func(t *testing.T) {
		assert.Empty(t, Grid(at(10, 0), at(12, 0), 0))
		assert.Empty(t, Grid(at(10, 0), at(12, 0), -time.Minute))
	})

	t.Run("passo que nao divide a janela", func(t *testing.T) {
		got := Grid(at(10, 0), at(10, 50), 30*time.Minute)
		require.Len(t, got, 2)
		assert.Equal(t, at(10, 30), got[1])
	})
}
