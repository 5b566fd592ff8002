package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lince/eval"
)

type scriptedReader struct {
	lines []string
	i     int
}

func (s *scriptedReader) SetPrompt(string) {}

func (s *scriptedReader) Readline() (string, error) {
	if s.i >= len(s.lines) {
		return "", errors.New("EOF")
	}
	line := s.lines[s.i]
	s.i++
	return line, nil
}

func TestStartEvaluatesEachLine(t *testing.T) {
	it := eval.New()
	rl := &scriptedReader{lines: []string{"x = 2", "x + 3"}}
	var out bytes.Buffer
	Start(it, rl, &out)

	output := out.String()
	if !strings.Contains(output, "2") || !strings.Contains(output, "5") {
		t.Fatalf("expected output to mention 2 and 5, got %q", output)
	}
}

func TestStartReportsErrorsAndContinues(t *testing.T) {
	it := eval.New()
	rl := &scriptedReader{lines: []string{"nonexistent", "1 + 1"}}
	var out bytes.Buffer
	Start(it, rl, &out)

	output := out.String()
	if !strings.Contains(output, "error") {
		t.Fatalf("expected an error line in output, got %q", output)
	}
	if !strings.Contains(output, "2") {
		t.Fatalf("expected the loop to continue past the error, got %q", output)
	}
}

func TestEvalDirect(t *testing.T) {
	it := eval.New()
	v, err := Eval(it, "2 + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 4 {
		t.Fatalf("expected 4, got %+v", v)
	}
}
