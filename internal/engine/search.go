package engine

import (
	"math"
	"sort"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/spatial"
)

type searchCandidate struct {
	path         models.Path
	rankDistance float64
}

// SearchPaths filters and ranks candidate paths against resolved
// origin/destination coordinates for the given requesting user.
// Candidates must arrive with a derived status (nil-status paths are
// skipped). The result is deduplicated, never contains a CLOSED path
// or another user's private path, and may be empty.
func (e *Engine) SearchPaths(candidates []models.Path, origin, destination models.LatLng, userID string) []models.Path {
	seen := make(map[string]bool, len(candidates))
	var pool []searchCandidate

	for _, path := range candidates {
		if seen[path.ID] {
			continue
		}
		seen[path.ID] = true

		// Both endpoints must fall inside the per-axis tolerance box.
		if !spatial.WithinBox(path.Origin, origin, e.cfg.BBoxToleranceDeg) ||
			!spatial.WithinBox(path.Destination, destination, e.cfg.BBoxToleranceDeg) {
			continue
		}

		// A path must be close on both ends, not just the closer one.
		originErr := spatial.Distance(path.Origin, origin)
		destErr := spatial.Distance(path.Destination, destination)
		pool = append(pool, searchCandidate{
			path:         path,
			rankDistance: math.Max(originErr, destErr),
		})
	}

	if len(pool) == 0 {
		return []models.Path{}
	}

	minDistance := pool[0].rankDistance
	for _, c := range pool[1:] {
		if c.rankDistance < minDistance {
			minDistance = c.rankDistance
		}
	}
	// Let near-tied paths through without admitting distant ones when
	// one excellent match exists.
	cutoff := math.Min(e.cfg.MaxDistanceMeters, minDistance+e.cfg.NearBufferMeters)

	results := make([]models.Path, 0, len(pool))
	for _, c := range pool {
		if c.rankDistance > cutoff {
			continue
		}
		path := c.path
		if path.Status == nil {
			continue
		}
		if *path.Status == models.StatusClosed {
			continue
		}
		if path.Visibility == models.VisibilityPrivate && path.UserID != userID {
			continue
		}
		results = append(results, path)
	}

	sort.SliceStable(results, func(i, j int) bool {
		si, _ := results[i].Status.Score()
		sj, _ := results[j].Status.Score()
		if si != sj {
			return si > sj
		}
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results
}
