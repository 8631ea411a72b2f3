package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWordFilter_EmptySet verifies that an empty excluded-word set passes
// text through untouched, including text without a trailing newline.
func TestWordFilter_EmptySet(t *testing.T) {
	f := NewWordFilter(nil)

	assert.Equal(t, "hello\nworld\n", f.Filter("hello\nworld\n"))
	assert.Equal(t, "no trailing newline", f.Filter("no trailing newline"))
	assert.Equal(t, "", f.Filter(""))
}

// TestWordFilter_WholeWordMatch covers the whole-word boundary semantics:
// a line is dropped only when an excluded word appears bounded by
// non-word characters or string edges.
func TestWordFilter_WholeWordMatch(t *testing.T) {
	f := NewWordFilter([]string{"foo", "bar"})

	tests := []struct {
		name     string
		line     string
		survives bool
	}{
		{"partial word is not a match", "this has foobar\n", true},
		{"whole word at line middle", "this has foo only\n", false},
		{"whole word at line start", "bar leads the line\n", false},
		{"whole word at line end", "ends with foo\n", false},
		{"punctuation is a boundary", "stop. foo.\n", false},
		{"case sensitive", "this has Foo\n", true},
		{"unrelated line", "nothing to see\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Filter(tt.line)
			if tt.survives {
				assert.Equal(t, tt.line, got)
			} else {
				assert.Equal(t, "", got)
			}
		})
	}
}

// TestWordFilter_PreservesOrder verifies surviving lines keep their
// original order and content.
func TestWordFilter_PreservesOrder(t *testing.T) {
	f := NewWordFilter([]string{"secret"})

	in := "first\nthe secret line\nsecond\nthird\n"
	assert.Equal(t, "first\nsecond\nthird\n", f.Filter(in))
}

// TestWordFilter_ShrinkingWordSet verifies that removing a word from the
// excluded set can only add lines back, never remove more.
func TestWordFilter_ShrinkingWordSet(t *testing.T) {
	in := "has foo\nhas bar\nhas neither\n"

	both := NewWordFilter([]string{"foo", "bar"}).Filter(in)
	one := NewWordFilter([]string{"foo"}).Filter(in)

	assert.Equal(t, "has neither\n", both)
	assert.Equal(t, "has bar\nhas neither\n", one)
}

// TestWordFilter_RegexMetacharacters verifies excluded words are treated
// literally, not as patterns.
func TestWordFilter_RegexMetacharacters(t *testing.T) {
	f := NewWordFilter([]string{"a.b"})

	assert.Equal(t, "aXb stays\n", f.Filter("aXb stays\n"))
	assert.Equal(t, "", f.Filter("a.b goes\n"))
}

// TestWordFilter_TerminatesFinalLine verifies a surviving final line
// without a newline comes out newline-terminated.
func TestWordFilter_TerminatesFinalLine(t *testing.T) {
	f := NewWordFilter([]string{"x"})

	assert.Equal(t, "last line\n", f.Filter("last line"))
}
