package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/gubarz/mdhtml/internal/config"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using the system clipboard
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		// No clipboard tool found, just print
		_, err := fmt.Fprint(c.fallback, text)
		return err
	}
	return clipboard.WriteAll(text)
}

// ============================================================================
// Output Handling
// ============================================================================

// Mode represents where rendered HTML goes
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
	ModeFile  Mode = "file"
)

// Writer delivers rendered HTML according to the output mode
type Writer struct {
	out       io.Writer
	clipboard Clipboard
}

// NewWriter creates a writer printing to out
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:       out,
		clipboard: &systemClipboard{fallback: out},
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (w *Writer) WithClipboard(c Clipboard) *Writer {
	w.clipboard = c
	return w
}

// Clipboard returns the clipboard used for copy mode
func (w *Writer) Clipboard() Clipboard {
	return w.clipboard
}

// Output handles HTML based on the configured mode. path is the file
// written in file mode.
func (w *Writer) Output(html, path string) error {
	return w.OutputWithMode(html, Mode(config.GetOutput()), path)
}

// OutputWithMode handles HTML with an explicit mode
func (w *Writer) OutputWithMode(html string, mode Mode, path string) error {
	switch mode {
	case ModeCopy:
		return w.clipboard.Copy(html)
	case ModeFile:
		if path == "" {
			return fmt.Errorf("file output needs a path")
		}
		return writeFile(path, html)
	default: // print
		_, err := fmt.Fprintln(w.out, html)
		return err
	}
}

func writeFile(path, html string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(html+"\n"), 0o644)
}
