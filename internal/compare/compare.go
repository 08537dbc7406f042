// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare partitions two directory snapshots into files unique to
// either side and conflicts needing reconciliation.
package compare

import (
	"sort"
	"time"

	"github.com/pdiddy/savesync/internal/scan"
)

// Conflict is a game title present in both snapshots whose records differ
// by modification time beyond the tolerance or by extension.
type Conflict struct {
	Key string
	A   scan.FileRecord
	B   scan.FileRecord
}

// Diff is the result of comparing two snapshots. It is derived read-only
// data, valid only for the snapshot pair that produced it.
type Diff struct {
	OnlyInA   []scan.FileRecord
	OnlyInB   []scan.FileRecord
	Conflicts []Conflict
}

// Empty reports whether the two locations are already in sync.
func (d Diff) Empty() bool {
	return len(d.OnlyInA) == 0 && len(d.OnlyInB) == 0 && len(d.Conflicts) == 0
}

// Snapshots compares a and b. Keys are visited in lexicographic order so
// the output is deterministic. A title present in both is a conflict when
// the extensions differ, or when the modification times differ by more than
// tolerance; a pair within tolerance with equal extensions is considered
// synchronized and omitted entirely.
func Snapshots(a, b scan.Snapshot, tolerance time.Duration) Diff {
	var diff Diff
	for _, k := range unionKeys(a, b) {
		ra, inA := a[k]
		rb, inB := b[k]
		switch {
		case inA && !inB:
			diff.OnlyInA = append(diff.OnlyInA, ra)
		case !inA && inB:
			diff.OnlyInB = append(diff.OnlyInB, rb)
		default:
			// Extension mismatch is a conflict on its own; a format
			// difference must be reconciled even at identical mtimes.
			if ra.Ext != rb.Ext || absDelta(ra.ModTime, rb.ModTime) > tolerance {
				diff.Conflicts = append(diff.Conflicts, Conflict{Key: k, A: ra, B: rb})
			}
		}
	}
	return diff
}

func unionKeys(a, b scan.Snapshot) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func absDelta(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
