package password

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Generator builds passwords using a cryptographic randomness source.
type Generator struct {
	// rnd supplies the random bytes for character selection and shuffling.
	rnd io.Reader
}

// NewGenerator returns a Generator reading from crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rnd: rand.Reader}
}

// NewGeneratorWithReader returns a Generator reading from r.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{rnd: r}
}

// Generate returns a password of opts.Length characters with at least one
// character from every enabled class. The remaining characters are drawn
// uniformly from the union of the enabled classes and the result is shuffled.
func (g *Generator) Generate(opts Options) (string, error) {
	classes := opts.Classes()
	if len(classes) == 0 {
		return "", ErrNoClassSelected
	}
	if opts.Length < len(classes) {
		return "", &LengthError{Length: opts.Length, Min: len(classes)}
	}

	var all strings.Builder
	for _, c := range classes {
		all.WriteString(c.Chars())
	}
	union := all.String()

	buf := make([]byte, 0, opts.Length)
	for _, c := range classes {
		ch, err := g.pick(c.Chars())
		if err != nil {
			return "", err
		}
		buf = append(buf, ch)
	}
	for len(buf) < opts.Length {
		ch, err := g.pick(union)
		if err != nil {
			return "", err
		}
		buf = append(buf, ch)
	}

	if err := g.shuffle(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (g *Generator) pick(set string) (byte, error) {
	n, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[n], nil
}

// shuffle permutes b in place (Fisher-Yates).
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rnd, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
