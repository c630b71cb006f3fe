package streams

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	s := Writers(&out, &errOut)

	fmt.Fprint(s.Out(), "hello")
	fmt.Fprint(s.ErrOut(), "oops")

	if out.String() != "hello" {
		t.Fatalf("Out captured %q", out.String())
	}
	if errOut.String() != "oops" {
		t.Fatalf("ErrOut captured %q", errOut.String())
	}
	if s.In() != os.Stdin {
		t.Fatalf("In should default to os.Stdin")
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.In() != os.Stdin || s.Out() != io.Writer(os.Stdout) || s.ErrOut() != io.Writer(os.Stderr) {
		t.Fatalf("Default should wire the standard streams")
	}
}

func TestDiscard(t *testing.T) {
	s := Discard()
	if n, err := s.Out().Write([]byte("dropped")); err != nil || n != 7 {
		t.Fatalf("Discard Out write: n=%d err=%v", n, err)
	}
	if n, err := s.ErrOut().Write([]byte("dropped")); err != nil || n != 7 {
		t.Fatalf("Discard ErrOut write: n=%d err=%v", n, err)
	}
}

func TestBuffers(t *testing.T) {
	b := Buffers()

	fmt.Fprint(b.Out(), "line one\n")
	fmt.Fprint(b.ErrOut(), "warning\n")

	out, errOut := b.Strings()
	if out != "line one\n" || errOut != "warning\n" {
		t.Fatalf("Strings() = %q, %q", out, errOut)
	}

	b.Reset()
	out, errOut = b.Strings()
	if out != "" || errOut != "" {
		t.Fatalf("Reset did not clear buffers: %q, %q", out, errOut)
	}
}

func TestSlog(t *testing.T) {
	var logged bytes.Buffer
	l := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelInfo}))
	s := Slog(l)

	fmt.Fprintln(s.Out(), "created new config")
	fmt.Fprintln(s.ErrOut(), "cannot determine user config dir")

	got := logged.String()
	if !strings.Contains(got, "level=INFO") || !strings.Contains(got, "created new config") {
		t.Fatalf("info record missing: %q", got)
	}
	if !strings.Contains(got, "level=WARN") || !strings.Contains(got, "cannot determine user config dir") {
		t.Fatalf("warn record missing: %q", got)
	}
	// trailing newline is trimmed so each write is a single record
	if strings.Contains(got, `msg="created new config\n"`) {
		t.Fatalf("newline should be trimmed: %q", got)
	}
}
