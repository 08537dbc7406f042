// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/savesync/internal/sync"
)

func TestPromptDirection(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDir     sync.Direction
		wantProceed bool
		wantErr     bool
	}{
		{name: "card to local", input: "1\n", wantDir: sync.CardToLocal, wantProceed: true},
		{name: "local to card", input: "2\n", wantDir: sync.LocalToCard, wantProceed: true},
		{name: "exit", input: "3\n"},
		{name: "whitespace trimmed", input: "  1  \n", wantDir: sync.CardToLocal, wantProceed: true},
		{name: "invalid then valid", input: "banana\n7\n2\n", wantDir: sync.LocalToCard, wantProceed: true},
		{name: "input exhausted", input: "nope\n", wantErr: true},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			dir, proceed, err := promptDirection(strings.NewReader(tt.input), &out)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if proceed != tt.wantProceed {
				t.Errorf("proceed = %v, want %v", proceed, tt.wantProceed)
			}
			if proceed && dir != tt.wantDir {
				t.Errorf("direction = %v, want %v", dir, tt.wantDir)
			}
		})
	}
}

func TestPromptDirectionReprompts(t *testing.T) {
	var out bytes.Buffer
	_, _, err := promptDirection(strings.NewReader("x\n1\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Errorf("output missing re-prompt message:\n%s", out.String())
	}
	if strings.Count(out.String(), "Choose a sync direction") != 2 {
		t.Errorf("menu should be shown twice:\n%s", out.String())
	}
}
