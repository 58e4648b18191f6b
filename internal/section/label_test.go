package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Publications", Label("publications"))
	assert.Equal(t, "Side Projects", Label("side-projects"))
	assert.Equal(t, "", Label(""))
	assert.Equal(t, []string{"Hero", "About"}, Labels([]string{"hero", "about"}))
}
