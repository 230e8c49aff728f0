package fsutil_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/cpplongest/pkg/fsutil"
)

func FuzzReadInput(f *testing.F) {
	// Add seed corpus.
	f.Add([]byte(""))
	f.Add([]byte("# 1 \"a.c\"\nint x;\n"))
	f.Add([]byte("no trailing newline"))
	f.Add([]byte("\x00\x01\x02\x03"))
	f.Add(make([]byte, 1024))

	f.Fuzz(func(t *testing.T, content []byte) {
		path := filepath.Join(t.TempDir(), "fuzz.i")
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		input, err := fsutil.ReadInput(context.Background(), path, nil)
		if err != nil {
			t.Fatalf("ReadInput failed: %v", err)
		}

		if !bytes.Equal(input.Content, content) {
			t.Errorf("content mismatch: got %d bytes, want %d", len(input.Content), len(content))
		}
		if input.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", input.Size, len(content))
		}
	})
}
