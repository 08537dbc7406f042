// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/savesync/internal/scan"
)

var base = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// rec builds a FileRecord offset from the base time by delta.
func rec(key, ext string, delta time.Duration) scan.FileRecord {
	return scan.FileRecord{
		Key:     key,
		Path:    "/saves/" + key + ext,
		ModTime: base.Add(delta),
		Ext:     ext,
	}
}

func snap(recs ...scan.FileRecord) scan.Snapshot {
	s := make(scan.Snapshot, len(recs))
	for _, r := range recs {
		s[r.Key] = r
	}
	return s
}

func TestSnapshots(t *testing.T) {
	tol := time.Second

	tests := []struct {
		name          string
		a, b          scan.Snapshot
		wantOnlyA     []string
		wantOnlyB     []string
		wantConflicts []string
	}{
		{
			name:      "disjoint keys partition cleanly",
			a:         snap(rec("mario", ".sav", 0)),
			b:         snap(rec("zelda", ".srm", 0)),
			wantOnlyA: []string{"mario"},
			wantOnlyB: []string{"zelda"},
		},
		{
			name: "mtime within tolerance and equal ext is synchronized",
			a:    snap(rec("mario", ".sav", 0)),
			b:    snap(rec("mario", ".sav", 500*time.Millisecond)),
		},
		{
			name:          "mtime within tolerance but extension differs is a conflict",
			a:             snap(rec("mario", ".sav", 0)),
			b:             snap(rec("mario", ".srm", 500*time.Millisecond)),
			wantConflicts: []string{"mario"},
		},
		{
			name:          "identical mtime with differing extension is a conflict",
			a:             snap(rec("mario", ".sav", 0)),
			b:             snap(rec("mario", ".srm", 0)),
			wantConflicts: []string{"mario"},
		},
		{
			name:          "mtime beyond tolerance with equal ext is a conflict",
			a:             snap(rec("mario", ".sav", 0)),
			b:             snap(rec("mario", ".sav", 2*time.Second)),
			wantConflicts: []string{"mario"},
		},
		{
			name:          "conflicts sorted by key",
			a:             snap(rec("zelda", ".sav", 0), rec("mario", ".sav", 0), rec("ace", ".sav", 0)),
			b:             snap(rec("zelda", ".srm", 0), rec("mario", ".srm", 0), rec("ace", ".srm", 0)),
			wantConflicts: []string{"ace", "mario", "zelda"},
		},
		{
			name: "both empty",
			a:    snap(),
			b:    snap(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := Snapshots(tt.a, tt.b, tol)

			if got := recordKeys(diff.OnlyInA); !equal(got, tt.wantOnlyA) {
				t.Errorf("OnlyInA = %v, want %v", got, tt.wantOnlyA)
			}
			if got := recordKeys(diff.OnlyInB); !equal(got, tt.wantOnlyB) {
				t.Errorf("OnlyInB = %v, want %v", got, tt.wantOnlyB)
			}
			if got := conflictKeys(diff.Conflicts); !equal(got, tt.wantConflicts) {
				t.Errorf("Conflicts = %v, want %v", got, tt.wantConflicts)
			}

			wantEmpty := len(tt.wantOnlyA)+len(tt.wantOnlyB)+len(tt.wantConflicts) == 0
			if diff.Empty() != wantEmpty {
				t.Errorf("Empty() = %v, want %v", diff.Empty(), wantEmpty)
			}
		})
	}
}

func TestSnapshotsSymmetry(t *testing.T) {
	a := snap(rec("mario", ".sav", 0), rec("zelda", ".sav", 0), rec("ace", ".sav", 5*time.Second))
	b := snap(rec("zelda", ".srm", 3*time.Second), rec("ace", ".srm", 0), rec("tetris", ".srm", 0))
	tol := time.Second

	fwd := Snapshots(a, b, tol)
	rev := Snapshots(b, a, tol)

	if !equal(recordKeys(fwd.OnlyInA), recordKeys(rev.OnlyInB)) {
		t.Errorf("OnlyInA/OnlyInB asymmetric: %v vs %v", recordKeys(fwd.OnlyInA), recordKeys(rev.OnlyInB))
	}
	if !equal(recordKeys(fwd.OnlyInB), recordKeys(rev.OnlyInA)) {
		t.Errorf("OnlyInB/OnlyInA asymmetric: %v vs %v", recordKeys(fwd.OnlyInB), recordKeys(rev.OnlyInA))
	}
	if !equal(conflictKeys(fwd.Conflicts), conflictKeys(rev.Conflicts)) {
		t.Errorf("conflict sets asymmetric: %v vs %v", conflictKeys(fwd.Conflicts), conflictKeys(rev.Conflicts))
	}
	for i := range fwd.Conflicts {
		if fwd.Conflicts[i].A != rev.Conflicts[i].B || fwd.Conflicts[i].B != rev.Conflicts[i].A {
			t.Errorf("conflict %s records not swapped between directions", fwd.Conflicts[i].Key)
		}
	}
}

func TestPrint(t *testing.T) {
	diff := Snapshots(
		snap(rec("mario", ".sav", 0), rec("zelda", ".sav", 2*time.Second)),
		snap(rec("zelda", ".srm", 0), rec("tetris", ".srm", 0)),
		time.Second,
	)

	var buf bytes.Buffer
	Print(&buf, diff, "card", "local")
	out := buf.String()

	for _, want := range []string{"mario.sav", "tetris.srm", "zelda", "card version is newer"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Diff{}, "card", "local")
	if !strings.Contains(buf.String(), "in sync") {
		t.Errorf("empty diff report = %q, want in-sync message", buf.String())
	}
}

func recordKeys(recs []scan.FileRecord) []string {
	keys := make([]string, len(recs))
	for i, r := range recs {
		keys[i] = r.Key
	}
	return keys
}

func conflictKeys(cs []Conflict) []string {
	keys := make([]string, len(cs))
	for i, c := range cs {
		keys[i] = c.Key
	}
	return keys
}

func equal(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
