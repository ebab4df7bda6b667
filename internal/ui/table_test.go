package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_Alignment(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"a1", "short"},
			{"b22", "a longer title"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "a1   short") {
		t.Errorf("row misaligned: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "b22  a longer") {
		t.Errorf("row misaligned: %q", lines[2])
	}
}

func TestFormatTable_IgnoresANSIForWidths(t *testing.T) {
	styled := "\x1b[1m\x1b[36mab\x1b[0mcd"
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{styled, "one"},
			{"wxyz", "two"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if !strings.Contains(lines[1], "cd  one") {
		t.Errorf("styled cell misaligned: %q", lines[1])
	}
}

func TestTruncateTableCell(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if len(got) != tableCellMaxWidth {
		t.Errorf("truncated length = %d, want %d", len(got), tableCellMaxWidth)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Errorf("truncated cell missing ellipsis: %q", got)
	}

	if got := TruncateTableCell("short"); got != "short" {
		t.Errorf("short cell changed: %q", got)
	}
}

func TestTruncateTableCell_Newlines(t *testing.T) {
	if got := TruncateTableCell("one\ntwo"); got != "one two" {
		t.Errorf("TruncateTableCell = %q, want newline collapsed", got)
	}
}

func TestUniqueIDPrefixLengths(t *testing.T) {
	lengths := UniqueIDPrefixLengths([]string{"abc123", "abd456", "xyz789"})

	if lengths["abc123"] != 3 {
		t.Errorf("abc123 prefix = %d, want 3", lengths["abc123"])
	}
	if lengths["abd456"] != 3 {
		t.Errorf("abd456 prefix = %d, want 3", lengths["abd456"])
	}
	if lengths["xyz789"] != 1 {
		t.Errorf("xyz789 prefix = %d, want 1", lengths["xyz789"])
	}
}
