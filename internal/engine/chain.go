package engine

import "github.com/BIA3IA/Software-Engineering-2-sub000/internal/models"

// ReconstructChain reorders an unordered set of join rows into the
// linear chain their NextSegmentID pointers describe. The head is the
// one record whose own segment id is not referenced by any other
// record's pointer.
//
// Malformed input is tolerated rather than rejected: rows stored by
// earlier versions or touched by partial migrations do occur. If no
// head exists (a cycle, or every record referenced) the input is
// returned unchanged; a pointer that does not resolve ends the walk
// early, dropping the unreachable tail.
func ReconstructChain[T models.ChainRecord](records []T) []T {
	if len(records) <= 1 {
		return records
	}

	bySegment := make(map[string]T, len(records))
	referenced := make(map[string]bool, len(records))
	for _, rec := range records {
		bySegment[rec.Segment()] = rec
		if next := rec.Next(); next != nil {
			referenced[*next] = true
		}
	}

	var head *T
	for i := range records {
		if !referenced[records[i].Segment()] {
			head = &records[i]
			break
		}
	}
	if head == nil {
		return records
	}

	ordered := make([]T, 0, len(records))
	visited := make(map[string]bool, len(records))
	current := *head
	for !visited[current.Segment()] {
		visited[current.Segment()] = true
		ordered = append(ordered, current)
		next := current.Next()
		if next == nil {
			break
		}
		nextRec, ok := bySegment[*next]
		if !ok {
			break
		}
		current = nextRec
	}

	return ordered
}
