package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atinyakov/passgen/internal/client/storage"
	"github.com/atinyakov/passgen/internal/config"
	"github.com/atinyakov/passgen/internal/models"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/service"
	"github.com/atinyakov/passgen/internal/session"
	"github.com/atinyakov/passgen/internal/strength"
)

type fakeClipboard struct{ text string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

type memoryHistory struct{ entries []models.HistoryEntry }

func (m *memoryHistory) Record(ctx context.Context, e models.HistoryEntry) error {
	m.entries = append([]models.HistoryEntry{e}, m.entries...)
	return nil
}

func (m *memoryHistory) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func setup(t *testing.T, repo service.HistoryRepository) (*session.Session, *service.GeneratorService, *config.Options, *fakeClipboard) {
	t.Helper()
	options := config.Default()
	options.SaveFile = filepath.Join(t.TempDir(), "saved.txt")
	clip := &fakeClipboard{}
	svc := service.NewGeneratorService(password.NewGenerator(), repo, nil)
	sess := session.New(options.Password, svc, storage.NewFileStore(options.SaveFile), clip, nil)
	return sess, svc, options, clip
}

func TestRepl_GenerateCopySave(t *testing.T) {
	sess, svc, options, clip := setup(t, nil)
	input := "copy\ngenerate\ncopy\nsave\nexit\n"
	var out bytes.Buffer

	repl(context.Background(), strings.NewReader(input), &out, sess, svc, options)

	output := out.String()
	if !strings.Contains(output, "Error: generate a password first") {
		t.Errorf("expected precondition error, got %q", output)
	}
	if !strings.Contains(output, "Strength: ") {
		t.Errorf("expected strength line, got %q", output)
	}
	if clip.text == "" || clip.text != sess.Last() {
		t.Errorf("clipboard = %q; want %q", clip.text, sess.Last())
	}
	buf, err := os.ReadFile(options.SaveFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(buf) != sess.Last()+"\n" {
		t.Errorf("saved = %q; want %q", buf, sess.Last()+"\n")
	}
	if !strings.HasSuffix(output, "Bye\n") {
		t.Errorf("expected Bye at the end, got %q", output)
	}
}

func TestRepl_LengthAndToggle(t *testing.T) {
	sess, svc, options, _ := setup(t, nil)
	input := "length 30\ntoggle symbols\ntoggle emoji\nlength\nlength 1000\n"
	var out bytes.Buffer

	repl(context.Background(), strings.NewReader(input), &out, sess, svc, options)

	if sess.Options.Length != session.MaxLength {
		t.Errorf("Length = %d; want clamped %d", sess.Options.Length, session.MaxLength)
	}
	if !sess.Options.Symbols {
		t.Error("symbols should be enabled")
	}
	output := out.String()
	for _, want := range []string{"Length set to 30", "[x] symbols", "Unknown character set: emoji", "Usage: length <n>"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %q", want, output)
		}
	}
}

func TestRepl_GenerateRefused(t *testing.T) {
	sess, svc, options, _ := setup(t, nil)
	input := "toggle upper\ntoggle lower\ntoggle digits\ngenerate\n"
	var out bytes.Buffer

	repl(context.Background(), strings.NewReader(input), &out, sess, svc, options)

	if !strings.Contains(out.String(), "Error: select at least one character set") {
		t.Errorf("expected refusal, got %q", out.String())
	}
	if sess.Last() != "" {
		t.Errorf("Last = %q; want empty", sess.Last())
	}
}

func TestRepl_ConfigureAndStrength(t *testing.T) {
	sess, svc, options, _ := setup(t, nil)
	input := "configure\n16\nn\n\n\ny\nstrength aB3!aB3!aB3!aB3!\nfoo\n"
	var out bytes.Buffer

	repl(context.Background(), strings.NewReader(input), &out, sess, svc, options)

	want := password.Options{Length: 16, Lower: true, Digits: true, Symbols: true}
	if sess.Options != want {
		t.Errorf("Options = %+v; want %+v", sess.Options, want)
	}
	output := out.String()
	if !strings.Contains(output, "Strength: Strong (6/6") {
		t.Errorf("expected strong rating, got %q", output)
	}
	if !strings.Contains(output, "Unknown command") {
		t.Errorf("expected unknown command message, got %q", output)
	}
}

func TestRepl_History(t *testing.T) {
	repo := &memoryHistory{}
	sess, svc, options, _ := setup(t, repo)
	input := "generate\ngenerate\nhistory\n"
	var out bytes.Buffer

	repl(context.Background(), strings.NewReader(input), &out, sess, svc, options)

	if len(repo.entries) != 2 {
		t.Fatalf("recorded %d entries; want 2", len(repo.entries))
	}
	output := out.String()
	if !strings.Contains(output, "upper,lower,digits") {
		t.Errorf("expected classes in history table, got %q", output)
	}
}

func TestRunGenerate(t *testing.T) {
	sess, _, options, clip := setup(t, nil)
	options.Copy = true
	options.Save = true
	var out bytes.Buffer

	if err := runGenerate(context.Background(), &out, sess, options); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", out.String())
	}
	if lines[0] != sess.Last() || len(lines[0]) != 12 {
		t.Errorf("first line = %q; want the 12 character password", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Strength: "+string(strength.Assess(lines[0]).Label)) {
		t.Errorf("strength line = %q", lines[1])
	}
	if clip.text != lines[0] {
		t.Errorf("clipboard = %q; want %q", clip.text, lines[0])
	}
}

func TestPrintHistory(t *testing.T) {
	repo := &memoryHistory{entries: []models.HistoryEntry{{
		ID: "1", Length: 20, Classes: []string{"lower", "symbols"}, Score: 4,
		Strength: strength.Medium, CreatedAt: time.Now(),
	}}}
	svc := service.NewGeneratorService(password.NewGenerator(), repo, nil)
	var out bytes.Buffer

	if err := printHistory(context.Background(), &out, svc, 5); err != nil {
		t.Fatalf("printHistory failed: %v", err)
	}
	for _, want := range []string{"LENGTH", "lower,symbols", "Medium", "20"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("table missing %q:\n%s", want, out.String())
		}
	}

	disabled := service.NewGeneratorService(password.NewGenerator(), nil, nil)
	if err := printHistory(context.Background(), &out, disabled, 5); err == nil {
		t.Error("expected error when history is disabled")
	}
}

func TestRepl_ExitOffersSave(t *testing.T) {
	sess, svc, options, _ := setup(t, nil)
	var out bytes.Buffer

	repl(context.Background(), strings.NewReader("generate\nexit\ny\n"), &out, sess, svc, options)

	if !strings.Contains(out.String(), "Save the last password before exiting?") {
		t.Errorf("expected save question, got %q", out.String())
	}
	buf, err := os.ReadFile(options.SaveFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(buf) != sess.Last()+"\n" {
		t.Errorf("saved = %q; want %q", buf, sess.Last()+"\n")
	}
}
