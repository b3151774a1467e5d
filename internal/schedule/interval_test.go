package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2024, 6, 1, h, m, 0, 0, time.UTC)
}

func TestWithin(t *testing.T) {
	tests := []struct {
		name  string
		point time.Time
		start time.Time
		end   time.Time
		want  bool
	}{
		{"dentro", at(10, 30), at(10, 0), at(11, 0), true},
		{"igual ao inicio", at(10, 0), at(10, 0), at(11, 0), true},
		{"igual ao fim", at(11, 0), at(10, 0), at(11, 0), false},
		{"antes", at(9, 59), at(10, 0), at(11, 0), false},
		{"depois", at(11, 1), at(10, 0), at(11, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(tt.point, tt.start, tt.end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"sobreposicao parcial", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"a contem b", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"b contem a", at(10, 30), at(11, 0), at(10, 0), at(12, 0), true},
		{"identicos", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"encostados a antes de b", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"encostados b antes de a", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjuntos", at(10, 0), at(10, 30), at(11, 0), at(11, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// a fórmula é simétrica
			assert.Equal(t, got, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
