// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sync decides, per differing item, whether to convert, skip, or
// report an error, for one chosen sync direction. Each item's outcome is
// independent; a failed conversion never aborts the batch.
package sync

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdiddy/savesync/internal/compare"
	"github.com/pdiddy/savesync/internal/convert"
	"github.com/pdiddy/savesync/internal/scan"
	"github.com/pdiddy/savesync/pkg/types"
)

// Direction selects which location is authoritative. The Diff handed to
// Run must have been produced with the card snapshot as A and the local
// snapshot as B.
type Direction int

const (
	// CardToLocal treats the card as the source of truth.
	CardToLocal Direction = iota
	// LocalToCard treats the local folder as the source of truth.
	LocalToCard
)

func (d Direction) String() string {
	if d == LocalToCard {
		return "local-to-card"
	}
	return "card-to-local"
}

// reverse names the opposite direction, for skip messages.
func (d Direction) reverse() Direction {
	if d == LocalToCard {
		return CardToLocal
	}
	return LocalToCard
}

// ParseDirection converts a flag value into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "card-to-local":
		return CardToLocal, nil
	case "local-to-card":
		return LocalToCard, nil
	}
	return CardToLocal, fmt.Errorf("unknown direction %q (want card-to-local or local-to-card)", s)
}

// Result holds the outcome of one sync batch.
type Result struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the total number of items examined.
func (r Result) Total() int {
	return r.Processed + r.Skipped + r.Failed
}

// HasFailures reports whether any item failed conversion.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Director walks a Diff in one direction and drives the conversion tool for
// the items that need it, printing per-item outcomes to out.
type Director struct {
	tool convert.Tool
	cfg  types.SyncConfig
	out  io.Writer

	// DryRun prints decisions without invoking the tool.
	DryRun bool
}

// NewDirector returns a Director using tool for conversions.
func NewDirector(tool convert.Tool, cfg types.SyncConfig, out io.Writer) *Director {
	return &Director{tool: tool, cfg: cfg, out: out}
}

// action is the outcome the rule list assigns to a conflict.
type action int

const (
	actionConvert action = iota
	actionSkipEquivalent
	actionSkipDefault
)

// rule is one step of the conflict policy. Rules are evaluated in order and
// the first one that applies wins, so the policy reads top to bottom:
// newer-wins, then equivalent-under-different-extension, then default skip.
type rule struct {
	name  string
	apply func(c compare.Conflict, dir Direction) (action, bool)
}

func (d *Director) rules() []rule {
	tol := d.cfg.Tolerance
	naming := d.cfg.Naming
	return []rule{
		{
			name: "newer-wins",
			apply: func(c compare.Conflict, dir Direction) (action, bool) {
				src, dst := conflictRoles(c, dir)
				if src.ModTime.Sub(dst.ModTime) > tol {
					return actionConvert, true
				}
				return 0, false
			},
		},
		{
			// The card holds the card-native format, the local side the
			// local-native format, and the timestamps agree: the same save
			// already exists on both sides under different names.
			name: "equivalent-formats",
			apply: func(c compare.Conflict, dir Direction) (action, bool) {
				if c.A.Ext == naming.CardExt && c.B.Ext == naming.LocalExt &&
					absDelta(c.A.ModTime, c.B.ModTime) <= tol {
					return actionSkipEquivalent, true
				}
				return 0, false
			},
		},
		{
			name: "default-skip",
			apply: func(compare.Conflict, Direction) (action, bool) {
				return actionSkipDefault, true
			},
		},
	}
}

// decide evaluates the rule list for one conflict.
func (d *Director) decide(c compare.Conflict, dir Direction) action {
	for _, r := range d.rules() {
		if act, ok := r.apply(c, dir); ok {
			return act
		}
	}
	return actionSkipDefault
}

// Run processes every item the diff assigns to direction dir and returns the
// batch result. Items unique to the target side are left untouched; they
// belong to the reverse direction.
func (d *Director) Run(dir Direction, diff compare.Diff) Result {
	fmt.Fprintf(d.out, "Syncing %s\n", dir)

	var res Result
	for _, rec := range sourceOnly(dir, diff) {
		d.convertOne(dir, rec, &res)
	}

	for _, c := range diff.Conflicts {
		src, _ := conflictRoles(c, dir)
		switch d.decide(c, dir) {
		case actionConvert:
			d.convertOne(dir, src, &res)
		case actionSkipEquivalent:
			fmt.Fprintf(d.out, "skipped: %s (%s side already holds this save under %s)\n",
				c.Key, targetLabel(dir), targetExt(dir, d.cfg.Naming))
			res.Skipped++
		default:
			fmt.Fprintf(d.out, "skipped: %s (%s version is newer; run %s to update it)\n",
				c.Key, targetLabel(dir), dir.reverse())
			res.Skipped++
		}
	}

	fmt.Fprintf(d.out, "Sync %s complete: %d processed, %d skipped, %d failed (total: %d)\n",
		dir, res.Processed, res.Skipped, res.Failed, res.Total())
	return res
}

// convertOne converts a single source record to the direction's target path,
// recording the outcome. Failures are reported and the batch continues.
func (d *Director) convertOne(dir Direction, src scan.FileRecord, res *Result) {
	target := d.targetPath(dir, src.Key)

	if d.DryRun {
		fmt.Fprintf(d.out, "would convert: %s -> %s\n", filepath.Base(src.Path), filepath.Base(target))
		res.Processed++
		return
	}

	if err := d.tool.Convert(src.Path, target); err != nil {
		fmt.Fprintf(d.out, "failed:  %s (%v)\n", src.Key, err)
		res.Failed++
		return
	}
	fmt.Fprintf(d.out, "converted: %s -> %s\n", filepath.Base(src.Path), filepath.Base(target))
	res.Processed++
}

// targetPath builds the destination path for key under the direction's
// target convention: the platform tag is appended again when writing into
// the card location and omitted when writing into the local location.
func (d *Director) targetPath(dir Direction, key string) string {
	if dir == LocalToCard {
		return filepath.Join(d.cfg.Locations.CardSaves, key+d.cfg.Naming.PlatformTag+d.cfg.Naming.CardExt)
	}
	return filepath.Join(d.cfg.Locations.LocalSaves, key+d.cfg.Naming.LocalExt)
}

// sourceOnly returns the items that exist only on the direction's source
// side. Diff side A is the card, side B the local folder.
func sourceOnly(dir Direction, diff compare.Diff) []scan.FileRecord {
	if dir == LocalToCard {
		return diff.OnlyInB
	}
	return diff.OnlyInA
}

// conflictRoles splits a conflict into source and destination records for
// the given direction.
func conflictRoles(c compare.Conflict, dir Direction) (src, dst scan.FileRecord) {
	if dir == LocalToCard {
		return c.B, c.A
	}
	return c.A, c.B
}

func targetLabel(dir Direction) string {
	if dir == LocalToCard {
		return "card"
	}
	return "local"
}

func targetExt(dir Direction, naming types.NamingConfig) string {
	if dir == LocalToCard {
		return naming.CardExt
	}
	return naming.LocalExt
}

func absDelta(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
