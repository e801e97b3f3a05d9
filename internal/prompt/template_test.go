package prompt

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	result := substitute("Hello {name}, you are a {title}. Bye {name}.", map[string]string{
		"name":  "Alex",
		"title": "PM",
	})
	assert.Equal(t, "Hello Alex, you are a PM. Bye Alex.", result)
}

func TestSubstitute_SinglePass(t *testing.T) {
	// A value containing another placeholder token must be emitted literally,
	// never substituted a second time.
	result := substitute("{a} {b}", map[string]string{
		"a": "{b}",
		"b": "beta",
	})
	assert.Equal(t, "{b} beta", result)
}

func TestSubstitute_UnknownKeysUntouched(t *testing.T) {
	result := substitute("keep {unknown} as is", map[string]string{"name": "Alex"})
	assert.Equal(t, "keep {unknown} as is", result)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long t...", truncate("long text here", 7))
}

func TestTruncateKeepsMultibyteRunesIntact(t *testing.T) {
	text := "résumé déjà vu — über café"

	got := truncate(text, 10)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "résumé déj...", got)

	// A limit landing exactly on the string length leaves it untouched.
	assert.Equal(t, text, truncate(text, utf8.RuneCountInString(text)))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "bold and plain", stripHTML("<p><strong>bold</strong> and plain</p>"))
	assert.Equal(t, "no tags", stripHTML("no tags"))
}
