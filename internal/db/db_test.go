package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// As colunas start_time/end_time migram como timestamptz; um range
// tsrange sobre elas falha na resolução de função (42883) e derruba
// o boot. O DDL precisa usar tstzrange.
func TestConstraintDDL_UsaTstzrange(t *testing.T) {
	assert.Contains(t, appointmentsNoOverlapDDL, "tstzrange(start_time, end_time)")
	assert.NotContains(t, appointmentsNoOverlapDDL, " tsrange(")

	// escopo da guarda: só reservas online concorrentes
	assert.Contains(t, appointmentsNoOverlapDDL, "WHERE (status = 'scheduled')")
	assert.Contains(t, appointmentsNoOverlapDDL, "barber_id WITH =")
	assert.Contains(t, appointmentsNoOverlapDDL, "EXCLUDE USING gist")
}
