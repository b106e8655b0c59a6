package models

// PathStatus is the shared health taxonomy for segments and paths.
// Five ordered severities, highest score = best condition.
type PathStatus string

const (
	StatusOptimal             PathStatus = "OPTIMAL"
	StatusMedium              PathStatus = "MEDIUM"
	StatusSufficient          PathStatus = "SUFFICIENT"
	StatusRequiresMaintenance PathStatus = "REQUIRES_MAINTENANCE"
	StatusClosed              PathStatus = "CLOSED"
)

// statusScores maps each taxonomy label to its numeric score.
// All aggregation happens in this numeric space.
var statusScores = map[PathStatus]float64{
	StatusOptimal:             5,
	StatusMedium:              4,
	StatusSufficient:          3,
	StatusRequiresMaintenance: 2,
	StatusClosed:              1,
}

// Score returns the numeric score for a status. ok is false for
// unknown labels, which callers must skip rather than default.
func (s PathStatus) Score() (float64, bool) {
	score, ok := statusScores[s]
	return score, ok
}

// Valid reports whether s is one of the five taxonomy labels.
func (s PathStatus) Valid() bool {
	_, ok := statusScores[s]
	return ok
}

// MapScoreToStatus maps a numeric score back to the nearest taxonomy
// label. Total over the real line and monotonic: a higher score never
// maps to a worse status.
func MapScoreToStatus(score float64) PathStatus {
	switch {
	case score >= 4.5:
		return StatusOptimal
	case score >= 3.5:
		return StatusMedium
	case score >= 2.5:
		return StatusSufficient
	case score >= 1.5:
		return StatusRequiresMaintenance
	default:
		return StatusClosed
	}
}
