package renderer

import (
	"strings"
	"testing"
)

func TestLayoutLinesNameSubstitution(t *testing.T) {
	text := "# Old Title\n## Summary\nBody line"
	lines := layoutLines(text, "Sipho Khumalo")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	if lines[0].role != roleTitle {
		t.Errorf("line 0 role = %v, want title", lines[0].role)
	}
	if lines[0].text != "SIPHO KHUMALO" {
		t.Errorf("title = %q, want SIPHO KHUMALO", lines[0].text)
	}
	if strings.Contains(lines[0].text, "Old Title") {
		t.Errorf("generated title text leaked into document: %q", lines[0].text)
	}

	if lines[1].role != roleHeading || lines[1].text != "Summary" {
		t.Errorf("line 1 = %+v, want heading Summary", lines[1])
	}
	if lines[2].role != roleBody || lines[2].text != "Body line" {
		t.Errorf("line 2 = %+v, want body", lines[2])
	}
}

func TestLayoutLinesSecondTitleKeepsOwnText(t *testing.T) {
	text := "# Name Here\nBody\n# Part Two"
	lines := layoutLines(text, "Thandi")

	if lines[0].text != "THANDI" {
		t.Errorf("first title = %q, want THANDI", lines[0].text)
	}
	if lines[2].role != roleTitle {
		t.Errorf("second title role = %v, want title", lines[2].role)
	}
	if lines[2].text != "Part Two" {
		t.Errorf("second title = %q, want its own text", lines[2].text)
	}
}

func TestLayoutLinesFallbackName(t *testing.T) {
	lines := layoutLines("# Whoever", "")
	if lines[0].text != "APPLICANT NAME" {
		t.Errorf("title = %q, want APPLICANT NAME", lines[0].text)
	}
}

func TestLayoutLinesRoles(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantRole lineRole
		wantText string
	}{
		{"blank", "   ", roleGap, ""},
		{"double hash heading", "## Professional Summary", roleHeading, "Professional Summary"},
		{"triple hash heading", "### Sub Section", roleHeading, "Sub Section"},
		{"bold marker heading", "**Key Skills**", roleHeading, "Key Skills"},
		{"plain body", "Managed daily stock levels", roleBody, "Managed daily stock levels"},
		{"body inline markers stripped", "Handled **cash** and `stock`", roleBody, "Handled cash and stock"},
		{"dash bullet", "- Grew sales", roleBody, "• Grew sales"},
		{"star bullet", "* Grew sales", roleBody, "• Grew sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := layoutLines(tt.line, "X")
			if len(lines) != 1 {
				t.Fatalf("got %d lines", len(lines))
			}
			if lines[0].role != tt.wantRole {
				t.Errorf("role = %v, want %v", lines[0].role, tt.wantRole)
			}
			if lines[0].text != tt.wantText {
				t.Errorf("text = %q, want %q", lines[0].text, tt.wantText)
			}
		})
	}
}

func TestLayoutLinesNoHeadingsAtAll(t *testing.T) {
	text := "just a story\nabout my work\nnothing fancy"
	lines := layoutLines(text, "Thandi")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, ln := range lines {
		if ln.role != roleBody {
			t.Errorf("line %d role = %v, want body", i, ln.role)
		}
	}
}
