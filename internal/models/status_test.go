package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapScoreToStatusBreakpoints(t *testing.T) {
	tests := []struct {
		score float64
		want  PathStatus
	}{
		{6.0, StatusOptimal},
		{5.0, StatusOptimal},
		{4.5, StatusOptimal},
		{4.49, StatusMedium},
		{3.5, StatusMedium},
		{3.49, StatusSufficient},
		{2.5, StatusSufficient},
		{2.49, StatusRequiresMaintenance},
		{1.5, StatusRequiresMaintenance},
		{1.49, StatusClosed},
		{0, StatusClosed},
		{-5, StatusClosed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapScoreToStatus(tt.score), "score %v", tt.score)
	}
}

func TestMapScoreToStatusMonotonic(t *testing.T) {
	prev, _ := MapScoreToStatus(-10).Score()
	for score := -10.0; score <= 10; score += 0.05 {
		current, _ := MapScoreToStatus(score).Score()
		assert.GreaterOrEqual(t, current, prev, "score %v", score)
		prev = current
	}
}

func TestStatusScoreRoundTrips(t *testing.T) {
	for _, status := range []PathStatus{
		StatusOptimal, StatusMedium, StatusSufficient, StatusRequiresMaintenance, StatusClosed,
	} {
		score, ok := status.Score()
		assert.True(t, ok)
		assert.Equal(t, status, MapScoreToStatus(score))
	}
}

func TestUnknownStatusHasNoScore(t *testing.T) {
	_, ok := PathStatus("BROKEN").Score()
	assert.False(t, ok)
	assert.False(t, PathStatus("BROKEN").Valid())
}
