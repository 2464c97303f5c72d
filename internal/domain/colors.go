package domain

import (
	"strings"
)

// DefaultEventColor is used for labels that match no known keyword.
const DefaultEventColor = "#90a4ae"

// labelColors maps label keywords to display colors. Keywords are checked in
// order with a case-insensitive substring match, so more specific keywords
// must come before more general ones.
var labelColors = []struct {
	keyword string
	color   string
}{
	{"complete", "#2e7d32"},
	{"finish", "#2e7d32"},
	{"begin", "#1565c0"},
	{"start", "#1565c0"},
	{"install", "#6a1b9a"},
	{"deliver", "#ef6c00"},
	{"order", "#f9a825"},
	{"inspect", "#c62828"},
	{"demo", "#8d6e63"},
	{"paint", "#00838f"},
	{"frame", "#5d4037"},
	{"review", "#455a64"},
}

// ColorForLabel derives a display color from an event label. Both the
// importer and the CRUD surface must apply this identically, which is why
// the mapping lives here rather than at the call sites.
func ColorForLabel(label string) string {
	lowered := strings.ToLower(label)
	for _, lc := range labelColors {
		if strings.Contains(lowered, lc.keyword) {
			return lc.color
		}
	}
	return DefaultEventColor
}
