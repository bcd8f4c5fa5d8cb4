// Package group partitions audit records by leader.
package group

import (
	"slices"
	"strings"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
)

// DefaultUnassigned is the leader used for rows with a blank leader cell.
const DefaultUnassigned = "Unassigned"

// Options configures partitioning.
type Options struct {
	// Unassigned names the group receiving rows with a blank leader.
	// Empty means DefaultUnassigned.
	Unassigned string
}

// Partition splits records into one group per distinct leader value.
// Leaders are compared exactly (case-sensitive) and records keep their
// input order inside a group. Groups are sorted by leader.
func Partition(records []models.Record, opts Options) []models.Group {
	unassigned := opts.Unassigned
	if unassigned == "" {
		unassigned = DefaultUnassigned
	}

	index := make(map[string]int)
	var groups []models.Group
	for _, r := range records {
		leader := LeaderOf(r, unassigned)
		i, ok := index[leader]
		if !ok {
			i = len(groups)
			index[leader] = i
			groups = append(groups, models.Group{Leader: leader})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	slices.SortFunc(groups, func(a, b models.Group) int {
		return strings.Compare(a.Leader, b.Leader)
	})
	return groups
}

// LeaderOf returns the grouping key of r.
func LeaderOf(r models.Record, unassigned string) string {
	if r.Leader == "" {
		return unassigned
	}
	return r.Leader
}

// IsFlagged reports whether a QA result carries the flag token.
// The comparison ignores case, so "dnc" and "DNC - late" both match "DNC".
func IsFlagged(result, token string) bool {
	if token == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(result), strings.ToUpper(token))
}

// AnyFlagged reports whether any record's result carries the flag token.
func AnyFlagged(records []models.Record, token string) bool {
	return slices.ContainsFunc(records, func(r models.Record) bool {
		return IsFlagged(r.Result, token)
	})
}

// FlaggedFirst returns a copy of records with flagged rows moved ahead of
// the rest. Relative order inside each part is kept.
func FlaggedFirst(records []models.Record, token string) []models.Record {
	out := make([]models.Record, 0, len(records))
	var rest []models.Record
	for _, r := range records {
		if IsFlagged(r.Result, token) {
			out = append(out, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(out, rest...)
}
