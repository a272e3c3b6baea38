package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/passgen/internal/client/storage"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/service"
	"github.com/atinyakov/passgen/internal/session"
)

type fakeClipboard struct{ text string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) (Model, *session.Session, *fakeClipboard, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saved.txt")
	clip := &fakeClipboard{}
	svc := service.NewGeneratorService(password.NewGenerator(), nil, nil)
	sess := session.New(session.DefaultOptions, svc, storage.NewFileStore(path), clip, nil)
	return NewModel(sess, path), sess, clip, path
}

func press(m Model, ks ...tea.KeyMsg) Model {
	for _, k := range ks {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func TestModel_InitialView(t *testing.T) {
	m, _, _, _ := newModel(t)
	view := m.View()
	assert.Contains(t, view, "Password Length: 12")
	assert.Contains(t, view, "Strength: N/A")
	assert.Contains(t, view, "Include Symbols")
}

func TestModel_LengthKeys(t *testing.T) {
	m, sess, _, _ := newModel(t)
	press(m, keys("+"), keys("+"), keys("-"))
	assert.Equal(t, 13, sess.Options.Length)

	for range 100 {
		m = press(m, keys("-"))
	}
	assert.Equal(t, session.MinLength, sess.Options.Length)
}

func TestModel_ToggleAndGenerate(t *testing.T) {
	m, sess, _, _ := newModel(t)
	m = press(m, keys("4"), keys("g"))

	assert.True(t, sess.Options.Symbols)
	pw := sess.Last()
	require.Len(t, pw, 12)
	view := m.View()
	assert.Contains(t, view, pw)
	assert.Contains(t, view, "Strength: ")
	assert.NotContains(t, view, "Error:")
}

func TestModel_GenerateRefused(t *testing.T) {
	m, sess, _, _ := newModel(t)
	m = press(m, keys("1"), keys("2"), keys("3"), keys("g"))

	assert.Empty(t, sess.Last())
	assert.Contains(t, m.View(), "Error: select at least one character set")
}

func TestModel_CopyAndSave(t *testing.T) {
	m, sess, clip, path := newModel(t)

	m = press(m, keys("c"))
	assert.Contains(t, m.View(), "generate a password first")

	m = press(m, keys("g"), keys("c"))
	assert.Equal(t, sess.Last(), clip.text)
	assert.Contains(t, m.View(), "Password copied to clipboard!")

	m = press(m, keys("s"))
	assert.Contains(t, m.View(), "Password saved to")
	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sess.Last()+"\n", string(buf))
}

func TestModel_Quit(t *testing.T) {
	m, _, _, _ := newModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, strings.TrimSpace(next.View()) == "")
}
