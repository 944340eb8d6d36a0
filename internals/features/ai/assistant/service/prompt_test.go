package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"edusuite_backend/internals/features/ai/assistant/model"
)

func TestHashQuery(t *testing.T) {
	a := HashQuery("q", map[string]any{"b": 1, "a": 2})
	b := HashQuery("q", map[string]any{"a": 2, "b": 1})
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	assert.Equal(t, HashQuery("q", nil), HashQuery("q", map[string]any{}))
	assert.NotEqual(t, HashQuery("q", nil), HashQuery("Q", nil))
	assert.NotEqual(t, a, HashQuery("q", map[string]any{"a": 3, "b": 1}))
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"when", "does", "term", "start"}, Keywords("When does the TERM start? term!"))
	assert.Empty(t, Keywords("a an the"))
}

func TestBuildContext(t *testing.T) {
	long := strings.Repeat("x", 250)
	out := BuildContext([]model.SchoolDocModel{{Title: "One", Content: "short"}, {Title: "Two", Content: long}})
	lines := strings.Split(out, "\n")
	assert.Equal(t, "1) One::short...", lines[0])
	assert.Equal(t, "2) Two::"+strings.Repeat("x", 200)+"...", lines[1])

	assert.Contains(t, BuildPrompt("hi", "", true), "No specific school context found.")
	assert.Contains(t, BuildPrompt("hi", "", true), "- image_needed: true")
}

func TestParseResponse(t *testing.T) {
	got := ParseResponse("```json\n{\"answer\":\"yes\",\"tokens_estimate\":3}\n```")
	assert.Equal(t, "yes", got.Answer)
	assert.Equal(t, 3, got.TokensEstimate)
	assert.NotNil(t, got.Sources)

	plain := ParseResponse("Sorry, I cannot help with that.")
	assert.Equal(t, "Sorry, I cannot help with that.", plain.Answer)
	assert.NotNil(t, plain.Sources)
}
