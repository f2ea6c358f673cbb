package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptcraft/internal/technique"
)

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		in    string
		query string
		ok    bool
	}{
		{"search openai", "openai", true},
		{"SeArCh  golang generics ", "golang generics", true},
		{"search ", "", true},
		{"search", "", false},
		{"searching", "", false},
		{"please search x", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		q, ok := SearchQuery(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.query, q, tt.in)
	}
}

func TestExtractRole(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Write a poem as a Shakespeare expert", "shakespeare expert"},
		{"Explain taxes AS A senior tax accountant in Ohio", "senior tax accountant"},
		{"act as a tutor as a friend", "tutor"},
		{"Explain recursion", "helpful assistant"},
		{"respond as a", "helpful assistant"},
		{"she has a cat", "cat"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractRole(tt.in), tt.in)
	}
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name     string
		tech     technique.Technique
		in       string
		wantTask string
		want     technique.Params
	}{
		{
			name:     "no separator",
			tech:     technique.ContextEnriched,
			in:       "plain task",
			wantTask: "plain task",
		},
		{
			name:     "context",
			tech:     technique.ContextEnriched,
			in:       " team of 3 :: plan a sprint ",
			wantTask: "plan a sprint",
			want:     technique.Params{Context: "team of 3"},
		},
		{
			name:     "meta keeps later separators in task",
			tech:     technique.MetaPrompting,
			in:       "summarization :: summarize a :: b",
			wantTask: "summarize a :: b",
			want:     technique.Params{TaskType: "summarization"},
		},
		{
			name:     "breakdown constraints only",
			tech:     technique.InstructionBreakdown,
			in:       "Write docs :: concise; ; friendly",
			wantTask: "Write docs",
			want:     technique.Params{Constraints: []string{"concise", "friendly"}},
		},
		{
			name:     "scope operator is not a separator",
			tech:     technique.ContextEnriched,
			in:       "Explain std::vector",
			wantTask: "Explain std::vector",
		},
		{
			name:     "other techniques ignore separator",
			tech:     technique.ChainOfThought,
			in:       "a :: b",
			wantTask: "a :: b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, p := ParseInline(tt.tech, tt.in)
			assert.Equal(t, tt.wantTask, task)
			assert.Equal(t, tt.want, p)
		})
	}
}
