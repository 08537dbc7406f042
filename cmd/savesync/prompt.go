// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/savesync/internal/sync"
)

// promptDirection asks the operator to pick a sync direction. Invalid input
// re-prompts; choosing exit returns proceed=false. An error is returned only
// when input ends before a valid choice is made.
func promptDirection(r io.Reader, w io.Writer) (dir sync.Direction, proceed bool, err error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintln(w, "\nChoose a sync direction or exit:")
		fmt.Fprintln(w, "  1. Card -> Local (card is the source of truth)")
		fmt.Fprintln(w, "  2. Local -> Card (local folder is the source of truth)")
		fmt.Fprintln(w, "  3. Exit without syncing")
		fmt.Fprint(w, "Enter your choice (1, 2, or 3): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, false, fmt.Errorf("reading input: %w", err)
			}
			return 0, false, fmt.Errorf("input closed before a choice was made")
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			return sync.CardToLocal, true, nil
		case "2":
			return sync.LocalToCard, true, nil
		case "3":
			return 0, false, nil
		default:
			fmt.Fprintln(w, "Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}
