package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/config"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

func segmentReport(status string, pathStatus models.PathStatus, age time.Duration) models.Report {
	return models.Report{
		SegmentID:  "s1",
		Status:     status,
		PathStatus: pathStatus,
		CreatedAt:  testNow.Add(-age),
	}
}

func TestAggregateNoReportsIsNoOpinion(t *testing.T) {
	_, ok := testEngine().AggregateSegmentStatus(nil, testNow)
	assert.False(t, ok)
}

func TestAggregateIgnoredReportsAreExcluded(t *testing.T) {
	reports := []models.Report{
		segmentReport(models.ReportIgnored, models.StatusClosed, 0),
		segmentReport(models.ReportIgnored, models.StatusClosed, 0),
	}
	_, ok := testEngine().AggregateSegmentStatus(reports, testNow)
	assert.False(t, ok)
}

func TestAggregateUnknownPathStatusIsSkipped(t *testing.T) {
	reports := []models.Report{
		segmentReport(models.ReportCreated, models.PathStatus("LEGACY_VALUE"), 0),
	}
	_, ok := testEngine().AggregateSegmentStatus(reports, testNow)
	assert.False(t, ok)
}

func TestAggregateBelowMinReliabilityIsNoOpinion(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Beta = 0.95
	cfg.MinReliability = 0.01
	e := New(cfg)

	// A fresh rejected report scores reliability 0.05, under the
	// qualifying threshold of 0.2.
	reports := []models.Report{
		segmentReport(models.ReportRejected, models.StatusClosed, 0),
	}
	_, ok := e.AggregateSegmentStatus(reports, testNow)
	assert.False(t, ok)
}

func TestAggregateSingleConfirmedReport(t *testing.T) {
	reports := []models.Report{
		segmentReport(models.ReportConfirmed, models.StatusRequiresMaintenance, 0),
	}
	status, ok := testEngine().AggregateSegmentStatus(reports, testNow)
	require.True(t, ok)
	assert.Equal(t, models.StatusRequiresMaintenance, status)
}

func TestAggregateRejectedReportPullsScoreNegative(t *testing.T) {
	reports := []models.Report{
		segmentReport(models.ReportRejected, models.StatusRequiresMaintenance, 0),
	}
	status, ok := testEngine().AggregateSegmentStatus(reports, testNow)
	require.True(t, ok)
	assert.Equal(t, models.StatusClosed, status)
}

func TestAggregateFreshRejectionCarriesReducedWeight(t *testing.T) {
	cfg := config.DefaultEngine()
	cfg.Beta = 0.8
	e := New(cfg)

	// The fresh rejection drops to reliability 0.2 while the
	// confirmation keeps full weight: (5*1.0 - 5*0.2) / 1.2 = 3.33,
	// so the positive signal dominates despite the negated score.
	reports := []models.Report{
		segmentReport(models.ReportConfirmed, models.StatusOptimal, 0),
		segmentReport(models.ReportRejected, models.StatusOptimal, 0),
	}
	status, ok := e.AggregateSegmentStatus(reports, testNow)
	require.True(t, ok)
	assert.Equal(t, models.StatusSufficient, status)
}

func TestAggregateMixedReportsAverage(t *testing.T) {
	reports := []models.Report{
		segmentReport(models.ReportConfirmed, models.StatusOptimal, 0),
		segmentReport(models.ReportCreated, models.StatusSufficient, 0),
	}
	// Both carry max reliability: (5 + 3) / 2 = 4 -> MEDIUM.
	status, ok := testEngine().AggregateSegmentStatus(reports, testNow)
	require.True(t, ok)
	assert.Equal(t, models.StatusMedium, status)
}
