package linescan_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yaklabco/cpplongest/pkg/linescan"
)

func FuzzParseMarker(f *testing.F) {
	// Add seed corpus.
	f.Add([]byte(`# 1 "a.c"`))
	f.Add([]byte(`# 1 "a.c" 1 3 4`))
	f.Add([]byte(`# 0 "zero.c"`))
	f.Add([]byte(`# 12 "./././x.c"`))
	f.Add([]byte(`# 5 "unterminated`))
	f.Add([]byte(`# 5 `))
	f.Add([]byte(`#`))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, line []byte) {
		if bytes.IndexByte(line, '\n') >= 0 {
			t.Skip("markers are single lines")
		}

		before := linescan.State{File: "before.c", Line: 77}
		state := before
		var echo bytes.Buffer

		ok := linescan.ParseMarker(line, &state, &echo)

		if !ok {
			if state != before {
				t.Fatalf("rejected line changed state: %+v", state)
			}
			if echo.Len() != 0 {
				t.Fatalf("rejected line was echoed: %q", echo.String())
			}
			return
		}

		if echo.String() != string(line)+"\n" {
			t.Fatalf("echo = %q, want %q", echo.String(), string(line)+"\n")
		}
		if state.Line < 0 {
			t.Fatalf("negative line %d", state.Line)
		}
		if strings.HasPrefix(state.File, "./") {
			t.Fatalf("file %q kept a leading ./", state.File)
		}
	})
}

func FuzzScan(f *testing.F) {
	f.Add([]byte("a\nbb\nccc\n"))
	f.Add([]byte("# 10 \"foo.c\"\nX\n"))
	f.Add([]byte("\n\n\n"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, content []byte) {
		result := linescan.Scan(content, "fuzz.i", nil)

		longest := result.Longest
		if longest.Length != len(longest.Content) {
			t.Fatalf("length %d does not match content %d", longest.Length, len(longest.Content))
		}
		if bytes.IndexByte(longest.Content, '\n') >= 0 {
			t.Fatal("longest content contains a newline")
		}
		if longest.Length > len(content) {
			t.Fatalf("length %d exceeds input %d", longest.Length, len(content))
		}
	})
}
