package cmd_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/aallbrig/verse/cmd"
	"github.com/aallbrig/verse/menu"
)

// isolate points history at a temp dir and clears color and logging settings.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("VERSE_HISTORY_DIR", t.TempDir())
	t.Setenv("VERSE_NO_HISTORY", "")
	t.Setenv("VERSE_LOG_LEVEL", "")
	t.Setenv("VERSE_LOG_FILE", "")
	t.Setenv("NO_COLOR", "1")
}

func runCmd(args ...string) (string, error) {
	c := cmd.NewRootCmd()
	buf := &bytes.Buffer{}
	c.SetOut(buf)
	c.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func TestMenuIsValid(t *testing.T) {
	if err := cmd.NewMenu().Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := runCmd("version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "verse ") {
		t.Errorf("version output = %q, want 'verse ...'", out)
	}
	if !strings.Contains(out, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("version output = %q, want platform %s/%s", out, runtime.GOOS, runtime.GOARCH)
	}
	if !strings.Contains(out, ", go") {
		t.Errorf("version output = %q, want the Go version", out)
	}
}

func TestRootNoArgsShowsHelp(t *testing.T) {
	isolate(t)
	out, err := runCmd()
	if err != nil {
		t.Fatalf("no-args error: %v", err)
	}
	if out != cmd.NewMenu().RenderHelp() {
		t.Errorf("output = %q, want the help screen", out)
	}
}

func TestRootHelp(t *testing.T) {
	isolate(t)
	out, err := runCmd("--help")
	if err != nil {
		t.Fatalf("--help error: %v", err)
	}
	for _, want := range []string{"verse -- Compile a verse code.", "verse build", "verse tree", "VERSE_NO_HISTORY"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestHelpOnCommand(t *testing.T) {
	isolate(t)
	out, err := runCmd("help", "build")
	if err != nil {
		t.Fatalf("help build error: %v", err)
	}
	if !strings.HasPrefix(out, "build\n") || !strings.Contains(out, "--define, -D NAME=VALUE") {
		t.Errorf("help build output = %q", out)
	}
}

func TestBuild(t *testing.T) {
	isolate(t)
	out, err := runCmd("build", "-vj4", "--out", "/tmp/x", "-D", "DEBUG=1", "a.verse", "b.verse")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	want := "sources: a.verse b.verse\nout:     /tmp/x\njobs:    4\ndefine:  DEBUG=1\n"
	if out != want {
		t.Errorf("build output = %q, want %q", out, want)
	}
}

func TestBuildJobsAreDecimal(t *testing.T) {
	isolate(t)
	for _, tt := range []struct {
		jobs string
		want string
	}{
		{"010", "jobs:    10\n"},
		{"08", "jobs:    8\n"},
		{"+3", "jobs:    3\n"},
	} {
		out, err := runCmd("build", "-o", "x", "--jobs", tt.jobs, "a.verse")
		if err != nil {
			t.Errorf("--jobs %s: error = %v", tt.jobs, err)
			continue
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("--jobs %s: output = %q, want %q", tt.jobs, out, tt.want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		args []string
		kind menu.InvocationKind
	}{
		{[]string{"build", "a.verse"}, menu.MissingRequired},
		{[]string{"build", "-o", "x"}, menu.MissingPositional},
		{[]string{"build", "-o", "x", "--jobs=0", "a.verse"}, menu.ConstraintViolated},
		{[]string{"build", "-o", "x", "--jobs=0x10", "a.verse"}, menu.ConstraintViolated},
		{[]string{"build", "-o", "x", "--jobs=1_000", "a.verse"}, menu.ConstraintViolated},
		{[]string{"build", "-o", "x", "-D", "1BAD", "a.verse"}, menu.ConstraintViolated},
		{[]string{"build", "-o", "x", "--verbose=yes", "a.verse"}, menu.UnexpectedValue},
		{[]string{"compile"}, menu.UnknownCommand},
	}
	for _, tt := range tests {
		_, err := runCmd(tt.args...)
		var ie *menu.InvocationError
		if !errors.As(err, &ie) {
			t.Errorf("%v: error = %v, want *menu.InvocationError", tt.args, err)
			continue
		}
		if ie.Kind != tt.kind {
			t.Errorf("%v: kind = %s, want %s", tt.args, ie.Kind, tt.kind)
		}
		if menu.ExitCode(err) != menu.ExitUsage {
			t.Errorf("%v: exit code = %d, want %d", tt.args, menu.ExitCode(err), menu.ExitUsage)
		}
	}
}

func TestTreeText(t *testing.T) {
	isolate(t)
	out, err := runCmd("tree", "--no-color")
	if err != nil {
		t.Fatalf("tree error: %v", err)
	}
	for _, want := range []string{"▼ verse", "build SOURCE...", "--out,-o PATH (required", "• version"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}

func TestTreeJSONFiltered(t *testing.T) {
	isolate(t)
	out, err := runCmd("tree", "-O", "json", "--filter", "hist")
	if err != nil {
		t.Fatalf("tree error: %v", err)
	}
	var root struct {
		Name     string `json:"name"`
		Children []struct {
			Name string `json:"name"`
		} `json:"children"`
	}
	if err := json.Unmarshal([]byte(out), &root); err != nil {
		t.Fatalf("tree output is not JSON: %v\n%s", err, out)
	}
	if root.Name != "verse" || len(root.Children) != 1 || root.Children[0].Name != "history" {
		t.Errorf("decoded tree = %+v, want verse with only history", root)
	}
}

func TestTreeSelectedStatementsWithStats(t *testing.T) {
	isolate(t)
	out, err := runCmd("tree", "--stats", "version", "build")
	if err != nil {
		t.Fatalf("tree error: %v", err)
	}
	if strings.Contains(out, "history") {
		t.Errorf("tree output should only show the selected statements:\n%s", out)
	}
	if v, b := strings.Index(out, "version"), strings.Index(out, "build"); v < 0 || b < 0 || v > b {
		t.Errorf("tree output should list version before build:\n%s", out)
	}
	if !strings.HasSuffix(out, "2 statements, 1 flag, 3 options\n") {
		t.Errorf("tree output should end with stats:\n%s", out)
	}

	if _, err := runCmd("tree", "deploy"); err == nil || !strings.Contains(err.Error(), `"deploy"`) {
		t.Errorf("tree deploy error = %v, want unknown statement", err)
	}
}

func TestTreeRejectsUnknownFormat(t *testing.T) {
	isolate(t)
	_, err := runCmd("tree", "--output=toml")
	var ie *menu.InvocationError
	if !errors.As(err, &ie) || ie.Kind != menu.ConstraintViolated {
		t.Errorf("error = %v, want constraint-violated", err)
	}
}

func TestHistoryRecordsInvocations(t *testing.T) {
	isolate(t)
	if _, err := runCmd("version"); err != nil {
		t.Fatalf("version error: %v", err)
	}
	if _, err := runCmd("build", "-o", "out", "main.verse"); err != nil {
		t.Fatalf("build error: %v", err)
	}
	if _, err := runCmd("--help"); err != nil {
		t.Fatalf("help error: %v", err)
	}

	out, err := runCmd("history")
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("history listed %d entries, want 2:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[0], "verse build --out=out --jobs=1 main.verse") {
		t.Errorf("newest entry = %q, want canonical build line", lines[0])
	}
	if !strings.HasSuffix(lines[1], "verse version") {
		t.Errorf("oldest entry = %q, want version", lines[1])
	}

	out, err = runCmd("history", "-n", "1")
	if err != nil {
		t.Fatalf("history -n 1 error: %v", err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 1 {
		t.Errorf("history -n 1 listed %d entries", n)
	}

	out, err = runCmd("history", "--clear")
	if err != nil || !strings.Contains(out, "History cleared.") {
		t.Fatalf("history --clear = %q, %v", out, err)
	}
	out, _ = runCmd("history")
	if !strings.Contains(out, "(history is empty)") {
		t.Errorf("after clear, history output = %q", out)
	}
}

func TestHistoryDelete(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{{"version"}, {"tree", "build"}} {
		if _, err := runCmd(args...); err != nil {
			t.Fatalf("%v error: %v", args, err)
		}
	}
	out, err := runCmd("history")
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	fields := strings.Fields(lines[0])
	if len(fields) < 4 || fields[3] != "verse" {
		t.Fatalf("unexpected history line %q", lines[0])
	}
	id := fields[2]

	out, err = runCmd("history", "--delete", id)
	if err != nil || !strings.Contains(out, "Deleted "+id) {
		t.Fatalf("history --delete = %q, %v", out, err)
	}
	out, _ = runCmd("history")
	if strings.Contains(out, id) || !strings.Contains(out, "verse version") {
		t.Errorf("after delete, history output = %q", out)
	}

	if _, err := runCmd("history", "--delete", id); err == nil {
		t.Error("expected error deleting a missing entry")
	}
	_, err = runCmd("history", "--delete", "abc")
	var ie *menu.InvocationError
	if !errors.As(err, &ie) || ie.Kind != menu.ConstraintViolated {
		t.Errorf("history --delete abc error = %v, want constraint-violated", err)
	}
}

func TestHistoryDisabled(t *testing.T) {
	isolate(t)
	t.Setenv("VERSE_NO_HISTORY", "1")
	if _, err := runCmd("version"); err != nil {
		t.Fatalf("version error: %v", err)
	}
	out, err := runCmd("history")
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if !strings.Contains(out, "disabled") {
		t.Errorf("history output = %q, want disabled notice", out)
	}
}

func TestBadLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv("VERSE_LOG_LEVEL", "loud")
	if _, err := runCmd("version"); err == nil {
		t.Error("expected error for invalid VERSE_LOG_LEVEL")
	}
}
