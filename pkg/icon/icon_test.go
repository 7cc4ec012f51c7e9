package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, Glyph{Name: Mail, Slug: "mail"}, Resolve("Mail", Link))
	assert.Equal(t, Glyph{Name: Link, Slug: "link"}, ForContact("Telegram"))
	assert.Equal(t, Glyph{Name: Box, Slug: "box"}, ForSkill("DoesNotExist"))
	assert.Equal(t, Glyph{Name: Link, Slug: "link"}, Resolve("", Name("Nope")))
}

func TestResolve_IsCaseSensitive(t *testing.T) {
	assert.False(t, Known("mail"))
	assert.Equal(t, Box, ForSkill("cpu").Name)
}

func TestEveryGlyphHasItsOwnName(t *testing.T) {
	for name, g := range glyphs {
		assert.Equal(t, name, g.Name)
		assert.NotEmpty(t, g.Slug)
	}
}
