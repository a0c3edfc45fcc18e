package view

import "strings"

// A list arrangement is the ordered IDs of a list's reorderable rows. Lists
// split into sections carry a divider where each section begins: one per
// project heading, and one before Today's evening tasks. Tasks ahead of the
// first divider form the leading section.
const dividerPrefix = "§"

// EveningDivider opens the evening section of Today.
const EveningDivider = dividerPrefix + "evening"

const headingDividerPrefix = dividerPrefix + "heading:"

// HeadingDivider returns the divider that opens a heading's section.
func HeadingDivider(headingID string) string {
	return headingDividerPrefix + headingID
}

// IsDivider reports whether an arrangement entry is a divider.
func IsDivider(id string) bool {
	return strings.HasPrefix(id, dividerPrefix)
}

// DividerHeading returns the heading a divider opens.
func DividerHeading(divider string) (string, bool) {
	return strings.CutPrefix(divider, headingDividerPrefix)
}

// Sections splits an arrangement into its task IDs and the divider each
// task sits under. Leading tasks map to "".
func Sections(arrangement []string) ([]string, map[string]string) {
	ids := make([]string, 0, len(arrangement))
	under := make(map[string]string, len(arrangement))
	current := ""
	for _, id := range arrangement {
		if IsDivider(id) {
			current = id
			continue
		}
		ids = append(ids, id)
		under[id] = current
	}
	return ids, under
}
