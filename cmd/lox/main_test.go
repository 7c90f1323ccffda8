package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanSourcePrintsOneTokenPerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := scanSource("var x = 1;", &buf); err != nil {
		t.Fatalf("scanSource failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{"VAR var", "IDENTIFIER x", "= =", "NUMBER 1 1", "; ;", "EOF "}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestScanSourceReportsScanError(t *testing.T) {
	var buf bytes.Buffer
	err := scanSource("@", &buf)
	if err == nil {
		t.Fatalf("expected scan error")
	}
	if got := err.Error(); got != "[line 1] Error: Unexpected character" {
		t.Fatalf("unexpected diagnostic: %q", got)
	}
	if buf.Len() != 0 {
		t.Fatalf("no output expected on error, got %q", buf.String())
	}
}

func TestScanFileReadsAndScans(t *testing.T) {
	path := writeScript(t, "print \"hi\";\n")

	var buf bytes.Buffer
	if err := scanFile(path, &buf); err != nil {
		t.Fatalf("scanFile failed: %v", err)
	}
	if !strings.Contains(buf.String(), `STRING "hi" hi`) {
		t.Fatalf("missing string token in output: %q", buf.String())
	}
}

func TestScanFileMissingFile(t *testing.T) {
	err := scanFile(filepath.Join(t.TempDir(), "nope.lox"), io.Discard)
	if err == nil {
		t.Fatalf("expected read error for missing file")
	}
	if !strings.Contains(err.Error(), "read source") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppScanCommand(t *testing.T) {
	path := writeScript(t, "1 <= 2;")

	out, err := captureStdout(t, func() error {
		return newApp().Run([]string{"lox", "scan", path})
	})
	if err != nil {
		t.Fatalf("scan command failed: %v", err)
	}
	if !strings.Contains(out, "<= <=") {
		t.Fatalf("missing operator token in output: %q", out)
	}
}

func TestAppScanCommandRequiresPath(t *testing.T) {
	err := newApp().Run([]string{"lox", "scan"})
	if err == nil {
		t.Fatalf("expected file path error")
	}
	if !strings.Contains(err.Error(), "file path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
