package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLateCancellation(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "exactly 24h ahead", start: now.Add(24 * time.Hour), want: false},
		{name: "one second short of 24h", start: now.Add(24*time.Hour - time.Second), want: true},
		{name: "two hours ahead", start: now.Add(2 * time.Hour), want: true},
		{name: "three days ahead", start: now.Add(72 * time.Hour), want: false},
		{name: "already started", start: now.Add(-time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLateCancellation(tt.start, now, window))
		})
	}
}

func TestIsLateCancellation_IgnoresStoredZone(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)
	start := now.Add(24 * time.Hour).In(tokyo)

	assert.False(t, IsLateCancellation(start, now, 24*time.Hour))
	assert.True(t, IsLateCancellation(start.Add(-time.Second), now, 24*time.Hour))
}
