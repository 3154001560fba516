package renderer

import (
	"regexp"
	"strings"
)

// fallbackName is drawn when no display name was supplied.
const fallbackName = "Applicant Name"

type lineRole int

const (
	roleGap lineRole = iota
	roleTitle
	roleHeading
	roleBody
)

type renderLine struct {
	role lineRole
	text string
}

var (
	reTitle   = regexp.MustCompile(`^#\s*(.*)$`)
	reHeading = regexp.MustCompile(`^#{2,}\s*(.*)$`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// layoutLines runs the single-pass line classification shared by the
// PDF and DOCX writers. One flag of state: once a title-role line has
// placed the display name, later title lines keep their own text.
func layoutLines(text, displayName string) []renderLine {
	if displayName == "" {
		displayName = fallbackName
	}

	var out []renderLine
	namePlaced := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			out = append(out, renderLine{role: roleGap})

		case strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "##"):
			if !namePlaced {
				out = append(out, renderLine{role: roleTitle, text: strings.ToUpper(displayName)})
				namePlaced = true
				continue
			}
			// Malformed input with a second top-level heading: keep its
			// own text at title size.
			m := reTitle.FindStringSubmatch(line)
			out = append(out, renderLine{role: roleTitle, text: cleanInline(m[1])})

		case strings.HasPrefix(line, "##"):
			m := reHeading.FindStringSubmatch(line)
			out = append(out, renderLine{role: roleHeading, text: cleanInline(m[1])})

		case strings.HasPrefix(line, "**"):
			out = append(out, renderLine{role: roleHeading, text: cleanInline(line)})

		default:
			if m := reBullet.FindStringSubmatch(line); m != nil {
				out = append(out, renderLine{role: roleBody, text: "• " + cleanInline(m[1])})
				continue
			}
			out = append(out, renderLine{role: roleBody, text: cleanInline(line)})
		}
	}

	return out
}

func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	s = strings.ReplaceAll(s, "*", "")
	return strings.TrimSpace(s)
}
