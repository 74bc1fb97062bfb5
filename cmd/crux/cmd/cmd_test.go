package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cruxlang.org/go/errors"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
	return path
}

func runCmd(t *testing.T, args []string) (stdout string, err error) {
	t.Helper()
	c := New(args)
	var buf bytes.Buffer
	c.Command.SetOut(&buf)
	c.Command.SetErr(&buf)
	err = c.Command.Execute()
	return buf.String(), err
}

func TestReduceCommandWritesToStdout(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.rs", `fn f() -> i32 { 1 }`)
	out, err := runCmd(t, []string{"reduce", input})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "function f") {
		t.Errorf("stdout = %q, want it to contain the reduced function", out)
	}
}

func TestReduceCommandWritesToOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.rs", `fn f() -> i32 { 1 }`)
	outPath := filepath.Join(dir, "out.v")
	if _, err := runCmd(t, []string{"reduce", input, "-o", outPath}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile(%q) error = %v", outPath, err)
	}
	if !strings.Contains(string(got), "function f") {
		t.Errorf("output file = %q, want it to contain the reduced function", got)
	}
}

func TestReduceCommandHonorsOutputEnvironmentOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.rs", `fn f() -> i32 { 1 }`)
	outPath := filepath.Join(dir, "env-out.v")
	old, hadOld := os.LookupEnv("CRUX_OUTPUT")
	os.Setenv("CRUX_OUTPUT", outPath)
	defer func() {
		if hadOld {
			os.Setenv("CRUX_OUTPUT", old)
		} else {
			os.Unsetenv("CRUX_OUTPUT")
		}
	}()
	if _, err := runCmd(t, []string{"reduce", input}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile(%q) error = %v, want CRUX_OUTPUT to redirect the output", outPath, err)
	}
	if !strings.Contains(string(got), "function f") {
		t.Errorf("output file = %q, want it to contain the reduced function", got)
	}
}

func TestOxidizeCommandTranslatesVToS(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.v", "function f\nbegin\n    yield 1\nend function\n")
	out, err := runCmd(t, []string{"oxidize", input})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "fn f()") {
		t.Errorf("stdout = %q, want it to contain the oxidized function", out)
	}
}

func TestValidateCommandSucceedsOnWellFormedV(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.v", "function f\nbegin\nend function\n")
	if _, err := runCmd(t, []string{"validate", input}); err != nil {
		t.Errorf("Execute() error = %v, want nil", err)
	}
}

func TestValidateCommandFailsOnMalformedV(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.v", "function f\nbegin\nend structure\n")
	if _, err := runCmd(t, []string{"validate", input}); err == nil {
		t.Error("Execute() = nil error, want a parse error for the mismatched end marker")
	}
}

func TestMissingArgumentIsAUsageError(t *testing.T) {
	_, err := runCmd(t, []string{"reduce"})
	if err == nil {
		t.Fatal("Execute() = nil error, want a usage error for the missing argument")
	}
	var ue *usageError
	if !errors.As(err, &ue) {
		t.Errorf("err = %v (%T), want a *usageError", err, err)
	}
}

func TestTooManyArgumentsIsAUsageError(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.rs", `fn f() -> i32 { 1 }`)
	_, err := runCmd(t, []string{"reduce", input, input})
	if err == nil {
		t.Fatal("Execute() = nil error, want a usage error for too many arguments")
	}
	var ue *usageError
	if !errors.As(err, &ue) {
		t.Errorf("err = %v (%T), want a *usageError", err, err)
	}
}

func TestMissingInputFileIsAnIOError(t *testing.T) {
	_, err := runCmd(t, []string{"reduce", filepath.Join(t.TempDir(), "does-not-exist.rs")})
	if err == nil {
		t.Fatal("Execute() = nil error, want an I/O error for the missing file")
	}
	var ie *ioError
	if !errors.As(err, &ie) {
		t.Errorf("err = %v (%T), want an *ioError", err, err)
	}
}

func TestReduceCommandRecoversUnparsableSourceAsVerbatim(t *testing.T) {
	// The S-parser never hard-fails on a single bad construct; it falls
	// back to a verbatim item, so reduce succeeds even on malformed input.
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.rs", `fn f( { `)
	out, err := runCmd(t, []string{"reduce", input})
	if err != nil {
		t.Fatalf("Execute() error = %v, want the S-parser to recover via a verbatim fallback", err)
	}
	if !strings.Contains(out, "verbatim item") {
		t.Errorf("stdout = %q, want a verbatim item for the unparsable construct", out)
	}
}

func TestOxidizeCommandRejectsUnparsableSource(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.v", "function f\nbegin\n")
	_, err := runCmd(t, []string{"oxidize", input})
	if err == nil {
		t.Fatal("Execute() = nil error, want a transform error for a function missing its end marker")
	}
	var ue *usageError
	var ie *ioError
	if errors.As(err, &ue) || errors.As(err, &ie) {
		t.Errorf("err = %v, want a plain transform error, not a usage or I/O error", err)
	}
}

func TestValidateAllErrorsFlagIsAcceptedAlongsideAnError(t *testing.T) {
	// vparser.Parse stops at its first error rather than accumulating an
	// errors.List, so --all-errors has nothing further to reveal here; this
	// only confirms the flag is wired and doesn't change the outcome.
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.v", "function f\nbegin\n    yield 1 @ 2\nend function\n")
	_, err := runCmd(t, []string{"validate", input, "--all-errors"})
	if err == nil {
		t.Fatal("Execute() = nil error, want an error for the prohibited character")
	}
}

func TestMainReturnsZeroOnSuccess(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.rs", `fn f() -> i32 { 1 }`)
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"crux", "reduce", input, "-o", filepath.Join(dir, "out.v")}
	if code := Main(); code != 0 {
		t.Errorf("Main() = %d, want 0", code)
	}
}

func TestMainReturnsUsageExitCode(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"crux", "reduce"}
	if code := Main(); code != 64 {
		t.Errorf("Main() = %d, want 64", code)
	}
}

func TestMainReturnsIOExitCode(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"crux", "reduce", "/no/such/file.rs"}
	if code := Main(); code != 2 {
		t.Errorf("Main() = %d, want 2", code)
	}
}

func TestMainReturnsTransformFailureExitCode(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "in.v", "function f\nbegin\n")
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"crux", "oxidize", input}
	if code := Main(); code != 1 {
		t.Errorf("Main() = %d, want 1", code)
	}
}
