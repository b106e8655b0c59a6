package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"
)

var (
	queryOrigin      = models.LatLng{Lat: 45.4642, Lng: 9.1900} // Milano Duomo
	queryDestination = models.LatLng{Lat: 45.4773, Lng: 9.1815} // Sempione
)

type pathOpt func(*models.Path)

func withStatus(status models.PathStatus) pathOpt {
	return func(p *models.Path) { p.Status = &status }
}

func withOffsetDeg(offset float64) pathOpt {
	return func(p *models.Path) {
		p.Origin.Lat += offset
		p.Destination.Lat += offset
	}
}

func searchPath(id, userID, visibility string, opts ...pathOpt) models.Path {
	p := models.Path{
		ID:          id,
		UserID:      userID,
		Origin:      queryOrigin,
		Destination: queryDestination,
		Visibility:  visibility,
		DistanceKm:  2.5,
		CreatedAt:   testNow,
	}
	status := models.StatusMedium
	p.Status = &status
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func TestSearchExcludesClosedAndForeignPrivatePaths(t *testing.T) {
	candidates := []models.Path{
		searchPath("closed", "u2", models.VisibilityPublic, withStatus(models.StatusClosed)),
		searchPath("foreign-private", "u2", models.VisibilityPrivate),
		searchPath("own-private", "u1", models.VisibilityPrivate),
		searchPath("public", "u2", models.VisibilityPublic),
	}

	results := testEngine().SearchPaths(candidates, queryOrigin, queryDestination, "u1")

	ids := make([]string, len(results))
	for i, p := range results {
		ids[i] = p.ID
	}
	assert.ElementsMatch(t, []string{"own-private", "public"}, ids)
}

func TestSearchBoundingBoxFiltersDistantEndpoints(t *testing.T) {
	// 0.01 deg of latitude is ~1.1 km, far outside the ~200 m box.
	candidates := []models.Path{
		searchPath("near", "u1", models.VisibilityPublic),
		searchPath("far", "u1", models.VisibilityPublic, withOffsetDeg(0.01)),
	}

	results := testEngine().SearchPaths(candidates, queryOrigin, queryDestination, "u1")
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].ID)
}

func TestSearchNearnessCutoffDropsClearlyWorseMatches(t *testing.T) {
	// Best match ~11 m off; the other ~111 m off, past best+buffer.
	candidates := []models.Path{
		searchPath("best", "u1", models.VisibilityPublic, withOffsetDeg(0.0001)),
		searchPath("worse", "u1", models.VisibilityPublic, withOffsetDeg(0.001)),
	}

	results := testEngine().SearchPaths(candidates, queryOrigin, queryDestination, "u1")
	require.Len(t, results, 1)
	assert.Equal(t, "best", results[0].ID)
}

func TestSearchKeepsNearTiedMatches(t *testing.T) {
	candidates := []models.Path{
		searchPath("a", "u1", models.VisibilityPublic, withOffsetDeg(0.0001)),
		searchPath("b", "u1", models.VisibilityPublic, withOffsetDeg(0.0003)), // ~33m, inside best+50m
	}

	results := testEngine().SearchPaths(candidates, queryOrigin, queryDestination, "u1")
	assert.Len(t, results, 2)
}

func TestSearchRanksStatusBeforeDistance(t *testing.T) {
	optimal := searchPath("optimal-longer", "u1", models.VisibilityPublic, withStatus(models.StatusOptimal))
	optimal.DistanceKm = 3.0
	medium := searchPath("medium-shorter", "u1", models.VisibilityPublic, withStatus(models.StatusMedium))
	medium.DistanceKm = 2.0

	results := testEngine().SearchPaths([]models.Path{medium, optimal}, queryOrigin, queryDestination, "u1")
	require.Len(t, results, 2)
	assert.Equal(t, "optimal-longer", results[0].ID)
	assert.Equal(t, "medium-shorter", results[1].ID)
}

func TestSearchTieBreaksByDistanceThenRecency(t *testing.T) {
	shorter := searchPath("shorter", "u1", models.VisibilityPublic)
	shorter.DistanceKm = 1.0
	longer := searchPath("longer", "u1", models.VisibilityPublic)
	longer.DistanceKm = 2.0
	newer := searchPath("newer", "u1", models.VisibilityPublic)
	newer.DistanceKm = 1.0
	newer.CreatedAt = testNow.Add(time.Hour)

	results := testEngine().SearchPaths([]models.Path{longer, shorter, newer}, queryOrigin, queryDestination, "u1")
	require.Len(t, results, 3)
	assert.Equal(t, "newer", results[0].ID)
	assert.Equal(t, "shorter", results[1].ID)
	assert.Equal(t, "longer", results[2].ID)
}

func TestSearchDeduplicatesCandidates(t *testing.T) {
	p := searchPath("dup", "u1", models.VisibilityPublic)
	results := testEngine().SearchPaths([]models.Path{p, p}, queryOrigin, queryDestination, "u1")
	assert.Len(t, results, 1)
}

func TestSearchNoMatchesReturnsEmptyList(t *testing.T) {
	candidates := []models.Path{
		searchPath("far", "u1", models.VisibilityPublic, withOffsetDeg(0.05)),
	}
	results := testEngine().SearchPaths(candidates, queryOrigin, queryDestination, "u1")
	require.NotNil(t, results)
	assert.Empty(t, results)
}
