package reports

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Caso 1: en un día normal el rango es [medianoche, medianoche siguiente).
func TestDayBounds_DiaNormal(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	from, to := dayBounds(time.Date(2025, time.June, 15, 14, 30, 0, 0, loc))

	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2025, time.June, 16, 0, 0, 0, 0, loc), to)
}

// Caso 2: en un día con cambio de horario el día no dura 24 horas; el límite
// superior debe seguir siendo la medianoche del día siguiente.
func TestDayBounds_DiaConCambioDeHorario(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// El 2 de noviembre de 2025 termina el horario de verano y el día dura
	// 25 horas: medianoche + 24h caería a las 23:00 del mismo día.
	from, to := dayBounds(time.Date(2025, time.November, 2, 12, 0, 0, 0, loc))

	assert.Equal(t, time.Date(2025, time.November, 2, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2025, time.November, 3, 0, 0, 0, 0, loc), to)
	assert.Equal(t, 25*time.Hour, to.Sub(from))
}
