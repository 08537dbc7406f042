// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/pdiddy/savesync/internal/scan"
)

// mtimeFormat is the human-readable timestamp shown in reports.
const mtimeFormat = time.ANSIC

var (
	heading  = color.New(color.FgCyan, color.Bold)
	conflict = color.New(color.FgYellow)
	newer    = color.New(color.FgGreen)
)

// Print renders the difference report for a human operator. labelA and
// labelB name the two locations (e.g. "card", "local"); the diff must have
// been produced with A and B in that order.
func Print(w io.Writer, d Diff, labelA, labelB string) {
	if d.Empty() {
		fmt.Fprintln(w, "No significant differences found. Folders are in sync.")
		return
	}

	if len(d.OnlyInA) > 0 {
		heading.Fprintf(w, "\nFiles found only on %s (copied to %s when syncing %s -> %s):\n", labelA, labelB, labelA, labelB)
		printRecords(w, d.OnlyInA)
	}
	if len(d.OnlyInB) > 0 {
		heading.Fprintf(w, "\nFiles found only on %s (copied to %s when syncing %s -> %s):\n", labelB, labelA, labelB, labelA)
		printRecords(w, d.OnlyInB)
	}
	if len(d.Conflicts) > 0 {
		heading.Fprintf(w, "\nConflicts (present in both, differing by modification time or extension):\n")
		for _, c := range d.Conflicts {
			conflict.Fprintf(w, "  - %s\n", c.Key)
			fmt.Fprintf(w, "      %-6s %s (modified %s, ext %s)\n",
				labelA+":", filepath.Base(c.A.Path), c.A.ModTime.Format(mtimeFormat), c.A.Ext)
			fmt.Fprintf(w, "      %-6s %s (modified %s, ext %s)\n",
				labelB+":", filepath.Base(c.B.Path), c.B.ModTime.Format(mtimeFormat), c.B.Ext)
			switch {
			case c.A.ModTime.After(c.B.ModTime):
				newer.Fprintf(w, "      (%s version is newer)\n", labelA)
			case c.B.ModTime.After(c.A.ModTime):
				newer.Fprintf(w, "      (%s version is newer)\n", labelB)
			default:
				fmt.Fprintln(w, "      (modification times match; extensions differ)")
			}
		}
	}
	fmt.Fprintln(w)
}

func printRecords(w io.Writer, recs []scan.FileRecord) {
	for _, r := range recs {
		fmt.Fprintf(w, "  - %s (modified %s)\n", filepath.Base(r.Path), r.ModTime.Format(mtimeFormat))
	}
}
