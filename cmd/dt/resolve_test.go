package main

import (
	"strings"
	"testing"

	"github.com/amonks/daytask/task"
)

func TestMatchTaskID(t *testing.T) {
	tasks := []task.Task{
		{ID: "abc123"},
		{ID: "abd456"},
		{ID: "xyz789"},
	}

	tests := []struct {
		name    string
		prefix  string
		want    string
		wantErr string
	}{
		{name: "exact match", prefix: "abc123", want: "abc123"},
		{name: "unique prefix", prefix: "x", want: "xyz789"},
		{name: "longer unique prefix", prefix: "abc", want: "abc123"},
		{name: "case insensitive", prefix: "ABC", want: "abc123"},
		{name: "ambiguous prefix", prefix: "ab", wantErr: "ambiguous"},
		{name: "no match", prefix: "q", wantErr: "no task matches"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchTaskID(tasks, tt.prefix)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("matchTaskID(%q) error = %v, want containing %q", tt.prefix, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("matchTaskID(%q) error = %v", tt.prefix, err)
			}
			if got != tt.want {
				t.Errorf("matchTaskID(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestMatchTaskID_ExactBeatsPrefix(t *testing.T) {
	tasks := []task.Task{
		{ID: "abc"},
		{ID: "abcdef"},
	}

	got, err := matchTaskID(tasks, "abc")
	if err != nil {
		t.Fatalf("matchTaskID() error = %v", err)
	}
	if got != "abc" {
		t.Errorf("matchTaskID() = %q, want exact match abc", got)
	}
}
