package engine

import (
	"math"
	"time"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/config"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

// Engine evaluates crowd reports into segment and path health. All
// methods are pure functions over data fetched by the caller; tuning
// constants come from the injected config.
type Engine struct {
	cfg config.EngineConfig
}

// New creates an engine with the given tuning constants.
func New(cfg config.EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Signals is the scored weight of one report at one instant.
type Signals struct {
	Reliability float64 `json:"reliability"`
	Freshness   float64 `json:"freshness"`
}

// ComputeReportSignals converts a report's age and disposition into a
// freshness value and a reliability weight.
//
// Freshness halves every HalfLifeMinutes, is 1 for a brand-new report
// and approaches 0 with age. A REJECTED report contributes its
// freshness as a rejected score, any other disposition as a confirmed
// score; a report carries exactly one of the two. IGNORED reports must
// be excluded by the caller before reaching this point.
func (e *Engine) ComputeReportSignals(report models.Report, now time.Time) Signals {
	freshness := math.Exp2(-report.AgeMinutes(now) / e.cfg.HalfLifeMinutes)

	var confirmed, rejected float64
	if report.Status == models.ReportRejected {
		rejected = freshness
	} else {
		confirmed = freshness
	}

	reliability := 1 + e.cfg.Alpha*confirmed - e.cfg.Beta*rejected
	reliability = math.Min(math.Max(reliability, e.cfg.MinReliability), e.cfg.MaxReliability)

	return Signals{Reliability: reliability, Freshness: freshness}
}
