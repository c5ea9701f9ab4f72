package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayOccupancyRate(t *testing.T) {
	day := &DayOccupancy{Occupied: 1, TotalRooms: 3}
	assert.Equal(t, 33.33, day.Rate())

	full := &DayOccupancy{Occupied: 3, TotalRooms: 3}
	assert.Equal(t, 100.0, full.Rate())

	empty := &DayOccupancy{Occupied: 0, TotalRooms: 3}
	assert.Equal(t, 0.0, empty.Rate())

	// Пустой каталог не делит на ноль
	noRooms := &DayOccupancy{Occupied: 0, TotalRooms: 0}
	assert.Equal(t, 0.0, noRooms.Rate())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 199.98, Round2(2*99.99))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 33.33, Round2(100.0/3))
	assert.Equal(t, 66.67, Round2(200.0/3))
	assert.Equal(t, 0.0, Round2(0))
}
