package generation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_Default(t *testing.T) {
	b, err := NewPromptBuilder("")
	require.NoError(t, err)

	prompt, err := b.Build("Mathematics", "Derivatives")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Subject: Mathematics")
	assert.Contains(t, prompt, "Topic: Derivatives")
	assert.Contains(t, prompt, "exactly 10 flashcards")
	assert.Contains(t, prompt, `"question"`)
	assert.Contains(t, prompt, `"answer"`)
	assert.Contains(t, prompt, "Problem solving")
}

func TestPromptBuilder_DoesNotEscapeInput(t *testing.T) {
	b, err := NewPromptBuilder("")
	require.NoError(t, err)

	prompt, err := b.Build("Literature", `Shakespeare's "Hamlet" & <Macbeth>`)
	require.NoError(t, err)
	assert.Contains(t, prompt, `Shakespeare's "Hamlet" & <Macbeth>`)
}

func TestPromptBuilder_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("Cards for {{.Topic}} ({{.Subject}})"), 0o600))

	b, err := NewPromptBuilder(path)
	require.NoError(t, err)

	prompt, err := b.Build("History", "Rome")
	require.NoError(t, err)
	assert.Equal(t, "Cards for Rome (History)", prompt)
}

func TestPromptBuilder_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.tmpl")
	require.NoError(t, os.WriteFile(bad, []byte("{{.Topic"), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.tmpl")},
		{name: "unparseable template", path: bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPromptBuilder(tt.path)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}
