// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll copies text to the system clipboard. It fails when no clipboard
// utility is available (for example xclip or xsel on Linux).
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unavailable on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

var _ Writer = System{}
