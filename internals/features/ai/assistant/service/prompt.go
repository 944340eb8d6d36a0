package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/bytedance/sonic"

	"edusuite_backend/internals/features/ai/assistant/dto"
	"edusuite_backend/internals/features/ai/assistant/model"
)

const SystemPrompt = `You are a helpful, concise school assistant designed to minimize token usage while giving accurate, grade-appropriate answers. Follow these rules exactly:

1. Brevity first. Default to a one-paragraph answer (<= 120 words) or <= 150 tokens.
2. Structured JSON output. Always respond in this exact JSON structure:
{
  "answer": "<short, direct answer>",
  "summary": "<2-sentence summary if needed or empty string>",
  "sources": ["<id1>", "<id2>"],
  "tokens_estimate": <integer>,
  "cached": <true|false>,
  "image_needed": <true|false>,
  "image_instructions": "<if image_needed true, 1-line description else empty>"
}
3. Stop early. Respect the stop sequence ###END###.
4. Be concise with context. Use provided snippets.
5. Image policy: Never generate an image unless image_needed is true.
6. Model tone: Low creativity (temp <= 0.3).
`

const (
	noContext      = "No specific school context found."
	snippetRunes   = 200
	maxContextDocs = 3
)

// HashQuery is sha256 over the question followed by the canonical JSON of options.
func HashQuery(question string, options map[string]any) string {
	if options == nil {
		options = map[string]any{}
	}
	// ConfigStd sorts map keys, so equal options always hash alike
	b, err := sonic.ConfigStd.Marshal(options)
	if err != nil {
		b = []byte("{}")
	}
	sum := sha256.Sum256(append([]byte(question), b...))
	return hex.EncodeToString(sum[:])
}

// Keywords are the lower-cased words of question longer than three letters.
func Keywords(question string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(question)) {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if len([]rune(w)) <= 3 {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func BuildContext(docs []model.SchoolDocModel) string {
	lines := make([]string, 0, len(docs))
	for i, d := range docs {
		content := []rune(d.Content)
		if len(content) > snippetRunes {
			content = content[:snippetRunes]
		}
		lines = append(lines, fmt.Sprintf("%d) %s::%s...", i+1, d.Title, string(content)))
	}
	return strings.Join(lines, "\n")
}

func BuildPrompt(question, context string, imageNeeded bool) string {
	if context == "" {
		context = noContext
	}
	return fmt.Sprintf("\nQUESTION: %s\n\nCONTEXT_SNIPPETS:\n%s\n\nUSER_PREFERENCES:\n- image_needed: %t\n", question, context, imageNeeded)
}

// ParseResponse strips markdown fences and decodes the model output, falling
// back to a plain-text wrapper.
func ParseResponse(raw string) dto.AIResponse {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))

	var out dto.AIResponse
	if err := sonic.UnmarshalString(cleaned, &out); err != nil {
		return dto.Fallback(raw)
	}
	if out.Sources == nil {
		out.Sources = []string{}
	}
	return out
}
