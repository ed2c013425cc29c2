package repl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/graphio"
)

func newInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	in, err := New(Config{OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return in
}

// exec runs each line and returns the combined output of the last one.
func exec(t *testing.T, in *Interpreter, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	for _, line := range lines {
		out.Reset()
		if _, err := in.Exec(context.Background(), line, &out); err != nil {
			t.Fatalf("Exec(%q) error: %v", line, err)
		}
	}
	return out.String()
}

func TestExecAssignAndList(t *testing.T) {
	in := newInterpreter(t)
	got := exec(t, in, "b = complete 3", "a = ring 4", "list")
	want := "a\t4 nodes\nb\t3 nodes\n"
	if got != want {
		t.Errorf("list = %q, want %q", got, want)
	}
}

func TestExecInfo(t *testing.T) {
	in := newInterpreter(t)
	got := exec(t, in, "a = ring 4", "info a")
	want := "a: 4 nodes, 4 edges\n" +
		"  min degree: 2\n" +
		"  regular:    yes, degree 2\n" +
		"  consistent: yes\n"
	if got != want {
		t.Errorf("info = %q, want %q", got, want)
	}

	got = exec(t, in, "p = complete_bipartite 1 2", "info p")
	if !strings.Contains(got, "regular:    no") {
		t.Errorf("info p = %q, want it to report irregular", got)
	}
}

func TestExecCheeger(t *testing.T) {
	in := newInterpreter(t)
	tests := []struct {
		line string
		want string
	}{
		{"cheeger a", "cheeger(a) = 1\n"},
		{"cheeger p", "cheeger(p) = 0.5\n"},
		{"cheeger k", "cheeger(k) = 1.25\n"},
		{"cheeger k sampled=200", "cheeger(k) <= 1.25 (200 samples)\n"},
	}
	exec(t, in, "a = ring 4", "b = complete 2", "p = replacement_product a b", "k = complete 9")
	for _, tt := range tests {
		if got := exec(t, in, tt.line); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExecCheegerMemoForgetsRebinding(t *testing.T) {
	in := newInterpreter(t)
	exec(t, in, "a = ring 4", "cheeger a")
	if _, ok := in.memo.Get("a"); !ok {
		t.Fatal("cheeger result was not memoized")
	}
	got := exec(t, in, "a = ring 6", "cheeger a")
	if got != "cheeger(a) = 0.666667\n" {
		t.Errorf("after rebinding, cheeger a = %q", got)
	}
}

func TestExecCheegerInfeasible(t *testing.T) {
	in := newInterpreter(t)
	exec(t, in, "big = ring 25")
	_, err := in.Exec(context.Background(), "cheeger big", &bytes.Buffer{})
	if !gerrors.Is(err, gerrors.ErrCodeInfeasible) {
		t.Fatalf("cheeger big error = %v, want INFEASIBLE", err)
	}
	if !strings.Contains(err.Error(), "order 25 exceeds limit 24") {
		t.Errorf("error = %q, want the order limit", err.Error())
	}
}

func TestExecDotAndGraph6(t *testing.T) {
	in := newInterpreter(t)
	got := exec(t, in, "t = complete 3", "dot t")
	if want := "graph t {\n  0 -- 1\n  0 -- 2\n  1 -- 2\n}\n"; got != want {
		t.Errorf("dot t = %q, want %q", got, want)
	}
	if got := exec(t, in, "graph6 t"); got != "Bw\n" {
		t.Errorf("graph6 t = %q, want %q", got, "Bw\n")
	}

	exec(t, in, "r = ring 1")
	_, err := in.Exec(context.Background(), "graph6 r", &bytes.Buffer{})
	if !gerrors.Is(err, gerrors.ErrCodeUnsupported) {
		t.Errorf("graph6 of a loop error = %v, want UNSUPPORTED", err)
	}
}

func TestExecSave(t *testing.T) {
	in := newInterpreter(t)
	got := exec(t, in, "a = ring 5", "save a out/a.g6")
	path := filepath.Join(in.cfg.OutputDir, "out", "a.g6")
	if got != "wrote "+path+"\n" {
		t.Errorf("save output = %q", got)
	}
	g, err := graphio.Import(path)
	if err != nil {
		t.Fatalf("Import(%s) error: %v", path, err)
	}
	if n, _ := g.Order(); n != 5 {
		t.Errorf("imported order = %d, want 5", n)
	}
}

func TestExecViz(t *testing.T) {
	in := newInterpreter(t)
	exec(t, in, "a = ring 4", "viz a")
	data, err := os.ReadFile(filepath.Join(in.cfg.OutputDir, "a.svg"))
	if err != nil {
		t.Fatalf("viz did not write a.svg: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("a.svg does not look like SVG")
	}
}

func TestExecErrors(t *testing.T) {
	in := newInterpreter(t)
	exec(t, in, "a = ring 4")

	tests := []struct {
		line string
		code gerrors.Code
	}{
		{"frobnicate a", gerrors.ErrCodeInvalidInput},
		{"info missing", gerrors.ErrCodeNotFound},
		{"info", gerrors.ErrCodeInvalidInput},
		{"info a b", gerrors.ErrCodeInvalidInput},
		{"cheeger a sometimes", gerrors.ErrCodeInvalidInput},
		{"cheeger a sampled=0", gerrors.ErrCodeInvalidInput},
		{"1x = ring 3", gerrors.ErrCodeInvalidName},
		{"viz = ring 3", gerrors.ErrCodeInvalidName},
		{"viz a ../a.svg", gerrors.ErrCodeInvalidPath},
		{"viz a a.gif", gerrors.ErrCodeInvalidFormat},
		{"save a", gerrors.ErrCodeInvalidInput},
		{"save a a.txt", gerrors.ErrCodeInvalidFormat},
		{"save a /tmp/a.json", gerrors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		_, err := in.Exec(context.Background(), tt.line, &bytes.Buffer{})
		if got := gerrors.GetCode(err); got != tt.code {
			t.Errorf("Exec(%q) code = %q, want %q (err %v)", tt.line, got, tt.code, err)
		}
	}
}

func TestExecIgnoresBlankAndComments(t *testing.T) {
	in := newInterpreter(t)
	for _, line := range []string{"", "   ", "# a = ring 3"} {
		quit, err := in.Exec(context.Background(), line, &bytes.Buffer{})
		if quit || err != nil {
			t.Errorf("Exec(%q) = %v, %v, want false, nil", line, quit, err)
		}
	}
	if len(in.Names()) != 0 {
		t.Errorf("Names() = %v, want none", in.Names())
	}
}

func TestRun(t *testing.T) {
	in := newInterpreter(t)
	input := "a = ring 4\ncheeger a\nbogus\nquit\nb = ring 3\n"
	var out bytes.Buffer
	if err := in.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := "> > cheeger(a) = 1\n> Error: \"bogus\" does not match any command (try \"help\")\n> "
	if out.String() != want {
		t.Errorf("Run output = %q, want %q", out.String(), want)
	}
	if _, ok := in.Graph("b"); ok {
		t.Error("lines after quit were executed")
	}
}

func TestRunEndOfInput(t *testing.T) {
	in := newInterpreter(t)
	var out bytes.Buffer
	if err := in.Run(context.Background(), strings.NewReader("a = ring 3"), &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.String() != "> > \n" {
		t.Errorf("Run output = %q", out.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	in := newInterpreter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := in.Run(ctx, strings.NewReader("a = ring 3\n"), &bytes.Buffer{}); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestHelpListsConstructors(t *testing.T) {
	in := newInterpreter(t)
	got := exec(t, in, "help")
	for _, u := range Usage() {
		if !strings.Contains(got, "NAME = "+u) {
			t.Errorf("help output missing %q", u)
		}
	}
}

func TestSessionLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	in, err := New(Config{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	exec(t, in, "a = ring 3")
	if !strings.Contains(buf.String(), "bound graph") {
		t.Errorf("log = %q, want a bound graph entry", buf.String())
	}
	if !strings.Contains(buf.String(), in.Session().String()[:8]) {
		t.Errorf("log = %q, want the session id", buf.String())
	}
}
