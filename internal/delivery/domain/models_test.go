package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSchedule(t *testing.T) {
	start := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)

	dates := BuildSchedule(start, 3, 2)

	assert.Len(t, dates, 6)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), dates[2])
	// Second week starts exactly seven days after the first.
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), dates[3])
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), dates[5])
}

func TestBuildSchedule_SingleWeek(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	dates := BuildSchedule(start, 7, 1)

	assert.Len(t, dates, 7)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), dates[6])
}
