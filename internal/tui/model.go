// Package tui is a full-screen terminal front end for a generation session.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/session"
	"github.com/atinyakov/passgen/internal/strength"
)

// classKeys binds number keys to character classes, in display order.
var classKeys = []struct {
	key   string
	class password.Class
	text  string
}{
	{"1", password.Upper, "Include Uppercase"},
	{"2", password.Lower, "Include Lowercase"},
	{"3", password.Digits, "Include Digits"},
	{"4", password.Symbols, "Include Symbols"},
}

type status struct {
	text string
	err  bool
}

// Model is the bubbletea model driving a session.
type Model struct {
	sess     *session.Session
	saveFile string
	estimate *strength.Estimate
	status   status
	quitting bool
}

// NewModel wraps sess. saveFile is only used in messages.
func NewModel(sess *session.Session, saveFile string) Model {
	return Model{sess: sess, saveFile: saveFile}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "+", "=", "right", "l":
		m.sess.SetLength(m.sess.Options.Length + 1)
	case "-", "left", "h":
		m.sess.SetLength(m.sess.Options.Length - 1)
	case "g", "enter":
		m.generate()
	case "c":
		m.report(m.sess.Copy(), "Password copied to clipboard!")
	case "s":
		m.report(m.sess.Save(), "Password saved to "+m.saveFile)
	default:
		for _, ck := range classKeys {
			if ck.key == k {
				m.sess.Toggle(ck.class)
			}
		}
	}
	return m, nil
}

func (m *Model) generate() {
	pw, err := m.sess.Generate(context.Background())
	if err != nil {
		m.status = status{text: err.Error(), err: true}
		return
	}
	est := strength.EstimateOf(pw)
	m.estimate = &est
	m.status = status{}
}

func (m *Model) report(err error, ok string) {
	if err != nil {
		m.status = status{text: err.Error(), err: true}
		return
	}
	m.status = status{text: ok}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Generator"))
	b.WriteString("\n\n")

	var opts strings.Builder
	fmt.Fprintf(&opts, "Password Length: %d  %s\n", m.sess.Options.Length,
		dimStyle.Render(fmt.Sprintf("(%d-%d, +/-)", session.MinLength, session.MaxLength)))
	for _, ck := range classKeys {
		check := "[ ]"
		if m.sess.Options.Enabled(ck.class) {
			check = checkedStyle.Render("[x]")
		}
		fmt.Fprintf(&opts, "%s %s %s\n", dimStyle.Render(ck.key), check, ck.text)
	}
	b.WriteString(panelStyle.Render(strings.TrimSuffix(opts.String(), "\n")))
	b.WriteString("\n\n")

	if pw := m.sess.Last(); pw != "" {
		b.WriteString(passwordStyle.Render(pw))
		b.WriteString("\n")
		res := m.sess.Strength()
		label := string(res.Label)
		if style, ok := labelStyles[label]; ok {
			label = style.Render(label)
		}
		fmt.Fprintf(&b, "Strength: %s (%d/%d)", label, res.Score, strength.MaxScore)
		if m.estimate != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ~%.0f bits, cracked in %s", m.estimate.Entropy, m.estimate.CrackTime)))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Strength: N/A\n")
	}

	b.WriteString("\n")
	if m.status.text != "" {
		if m.status.err {
			b.WriteString(errorStyle.Render("Error: " + m.status.text))
		} else {
			b.WriteString(infoStyle.Render(m.status.text))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("g generate • c copy • s save • 1-4 toggle sets • q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the full-screen program and blocks until the user quits.
func Run(sess *session.Session, saveFile string) error {
	_, err := tea.NewProgram(NewModel(sess, saveFile), tea.WithAltScreen()).Run()
	return err
}
