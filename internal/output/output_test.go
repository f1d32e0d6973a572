package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type fakeClipboard struct {
	copied []string
}

func (c *fakeClipboard) Copy(text string) error {
	c.copied = append(c.copied, text)
	return nil
}

func TestOutputWithMode(t *testing.T) {
	dir := t.TempDir()
	html := "<div><p>x</p></div>"

	tests := []struct {
		name       string
		mode       Mode
		path       string
		wantOut    string
		wantCopied int
		wantFile   string
		wantErr    bool
	}{
		{name: "print", mode: ModePrint, wantOut: html + "\n"},
		{name: "unknown mode prints", mode: Mode("bogus"), wantOut: html + "\n"},
		{name: "copy", mode: ModeCopy, wantCopied: 1},
		{name: "file", mode: ModeFile, path: filepath.Join(dir, "sub", "out.html"), wantFile: html + "\n"},
		{name: "file without path", mode: ModeFile, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			clip := &fakeClipboard{}
			w := NewWriter(&out).WithClipboard(clip)

			err := w.OutputWithMode(html, tt.mode, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OutputWithMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if out.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
			if len(clip.copied) != tt.wantCopied {
				t.Errorf("copied %d times, want %d", len(clip.copied), tt.wantCopied)
			}
			if tt.wantFile != "" {
				data, err := os.ReadFile(tt.path)
				if err != nil {
					t.Fatal(err)
				}
				if string(data) != tt.wantFile {
					t.Errorf("file = %q, want %q", data, tt.wantFile)
				}
			}
		})
	}
}

func TestClipboardAccessor(t *testing.T) {
	clip := &fakeClipboard{}
	w := NewWriter(&bytes.Buffer{}).WithClipboard(clip)
	if w.Clipboard() != clip {
		t.Error("Clipboard() should return the configured clipboard")
	}
}
