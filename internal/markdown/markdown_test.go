package markdown

import (
	"strings"
	"testing"
)

func TestRender_BlankInput(t *testing.T) {
	if got := Render(80, 0, nil); got != nil {
		t.Errorf("Render(nil) = %q, want nil", got)
	}
	if got := Render(80, 0, []byte("   \n\n")); got != nil {
		t.Errorf("Render(blank) = %q, want nil", got)
	}
}

func TestRender_Indents(t *testing.T) {
	got := Render(40, 4, []byte("plain text"))
	if got == nil {
		t.Fatal("Render returned nil for non-blank input")
	}
	for _, line := range strings.Split(string(got), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("line not indented: %q", line)
		}
	}
}

func TestRender_NoTrailingNewlines(t *testing.T) {
	got := Render(40, 0, []byte("one\n\ntwo\n\n\n"))
	if strings.HasSuffix(string(got), "\n") {
		t.Errorf("Render left trailing newline: %q", got)
	}
}
