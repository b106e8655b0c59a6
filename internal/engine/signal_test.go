package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/config"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return New(config.DefaultEngine())
}

func reportAged(status string, age time.Duration) models.Report {
	return models.Report{
		ID:         "r1",
		SegmentID:  "s1",
		Status:     status,
		PathStatus: models.StatusSufficient,
		CreatedAt:  testNow.Add(-age),
	}
}

func TestFreshnessIsOneAtAgeZero(t *testing.T) {
	signals := testEngine().ComputeReportSignals(reportAged(models.ReportCreated, 0), testNow)
	assert.InDelta(t, 1.0, signals.Freshness, 1e-9)
}

func TestFreshnessHalvesEveryHalfLife(t *testing.T) {
	cfg := config.DefaultEngine()
	e := New(cfg)

	halfLife := time.Duration(cfg.HalfLifeMinutes) * time.Minute
	one := e.ComputeReportSignals(reportAged(models.ReportCreated, halfLife), testNow)
	two := e.ComputeReportSignals(reportAged(models.ReportCreated, 2*halfLife), testNow)

	assert.InDelta(t, 0.5, one.Freshness, 1e-9)
	assert.InDelta(t, 0.25, two.Freshness, 1e-9)
}

func TestFreshnessStrictlyDecreasesAndStaysNonNegative(t *testing.T) {
	e := testEngine()
	prev := e.ComputeReportSignals(reportAged(models.ReportCreated, 0), testNow).Freshness
	for _, age := range []time.Duration{time.Hour, 24 * time.Hour, 30 * 24 * time.Hour, 10 * 365 * 24 * time.Hour} {
		current := e.ComputeReportSignals(reportAged(models.ReportCreated, age), testNow).Freshness
		assert.Less(t, current, prev)
		assert.GreaterOrEqual(t, current, 0.0)
		prev = current
	}
}

func TestConfirmedReportRaisesReliabilityWithinClamp(t *testing.T) {
	cfg := config.DefaultEngine()
	e := New(cfg)

	signals := e.ComputeReportSignals(reportAged(models.ReportConfirmed, 0), testNow)
	// 1 + alpha*1 would exceed the cap, so the clamp applies.
	assert.Equal(t, cfg.MaxReliability, signals.Reliability)
}

func TestRejectedReportLowersReliability(t *testing.T) {
	cfg := config.DefaultEngine()
	e := New(cfg)

	signals := e.ComputeReportSignals(reportAged(models.ReportRejected, 0), testNow)
	assert.InDelta(t, 1-cfg.Beta, signals.Reliability, 1e-9)
}

func TestReliabilityAlwaysWithinBounds(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Alpha = 50
	cfg.Beta = 50
	e := New(cfg)

	for _, status := range []string{models.ReportCreated, models.ReportConfirmed, models.ReportRejected} {
		for _, age := range []time.Duration{0, time.Minute, 365 * 24 * time.Hour} {
			signals := e.ComputeReportSignals(reportAged(status, age), testNow)
			assert.GreaterOrEqual(t, signals.Reliability, cfg.MinReliability)
			assert.LessOrEqual(t, signals.Reliability, cfg.MaxReliability)
		}
	}
}
