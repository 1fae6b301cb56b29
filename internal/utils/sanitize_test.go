package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	out := SanitizeHTML(`<p onclick="steal()">Hello <b>world</b></p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Hello <b>world</b></p>", out)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", StripHTML("<h1>Hello <i>world</i></h1>"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-go-world", Slugify("  Hello, Go World!  "))
	assert.Equal(t, "", Slugify("!!!"))
	assert.LessOrEqual(t, len(Slugify("a very long title that keeps going and going and going well past the eighty character limit")), 80)
}
