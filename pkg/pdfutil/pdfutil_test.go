package pdfutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", normalize("  a\n\tb \r\n  c  "))
	assert.Equal(t, "", normalize(" \n \t "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "one two", truncate("one two three", 9), "cuts at the last word boundary")
	assert.Equal(t, "one two three", truncate("one two three", 100))
	assert.Equal(t, "", truncate("anything", 0))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5), "no boundary inside the cut keeps the prefix")
}

func TestExtractBytes_RejectsNonPDF(t *testing.T) {
	_, err := ExtractBytes([]byte("just some text, not a pdf"))
	assert.Error(t, err)
}

func TestExtractFile_MissingFile(t *testing.T) {
	_, err := ExtractFile("/nonexistent/essay.pdf")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "opening pdf"))
}
