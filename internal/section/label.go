package section

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label returns the display name of an anchor: "publications" becomes
// "Publications", "side-projects" becomes "Side Projects".
func Label(id string) string {
	if id == "" {
		return ""
	}
	// Casers are stateful; one per call keeps Label safe for concurrent use.
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

// Labels maps Label over ids.
func Labels(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = Label(id)
	}
	return out
}
