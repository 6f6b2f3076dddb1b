package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/topviz/internal/display/mocks"
	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/logging"
)

const topLog = `PID USER PR NI VIRT RES SHR S %CPU %MEM TIME+ COMMAND

1234 root 20 0 8192 2048 512 S 12.5 0.4 0:01.00 worker
1234 root 20 0 8192 2300 512 R 30.0 0.5 0:01.20 worker
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "top.log")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew_ParsesArguments(t *testing.T) {
	t.Parallel()
	app, err := New([]string{"topviz", "--display", "browser", "top.log"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if app.Config.Filename != "top.log" || app.Config.Display != "browser" {
		t.Errorf("Config = %+v", app.Config)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		args     []string
		wantCode int
		help     bool
	}{
		{"help", []string{"topviz", "-h"}, apperrors.ExitSuccess, true},
		{"no args", []string{"topviz"}, apperrors.ExitErrorUsage, false},
		{"two files", []string{"topviz", "a", "b"}, apperrors.ExitErrorUsage, false},
		{"bad display", []string{"topviz", "--display=png", "a"}, apperrors.ExitErrorConfig, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var errBuf bytes.Buffer
			_, err := New(tt.args, &errBuf)
			if err == nil {
				t.Fatal("New() should fail")
			}
			if IsHelpError(err) != tt.help {
				t.Errorf("IsHelpError() = %v, want %v", IsHelpError(err), tt.help)
			}
			if got := apperrors.ExitCodeFor(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

// Run switches the global theme; this test checks uncolored output and so
// stays out of the parallel set.
func TestRun_DisplaysBuiltFigure(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDisplayer(ctrl)
	path := writeLog(t, topLog)

	var got figure.Figure
	d.EXPECT().Display(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fig figure.Figure) error {
		got = fig
		return nil
	})

	var errBuf, out bytes.Buffer
	app, err := New([]string{"topviz", "--no-color", path}, &errBuf, WithDisplayer(d), WithLogger(logging.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, stderr = %q", code, errBuf.String())
	}

	if got.Source != path {
		t.Errorf("figure source = %q", got.Source)
	}
	var names []string
	for _, s := range got.Series() {
		names = append(names, s.Name)
	}
	if strings.Join(names, ",") != "%CPU,%MEM,RES,VIRT,SHR" {
		t.Errorf("series = %v", names)
	}
	mem, _ := got.Panel(figure.PanelMemory)
	if res := mem.Series[0]; res.Name != "RES" || res.Y[1] != 2300000 {
		t.Errorf("RES series = %+v", res)
	}
	if !strings.Contains(out.String(), "top.log: 2 samples") {
		t.Errorf("summary missing: %q", out.String())
	}
}

func TestRun_Quiet(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDisplayer(ctrl)
	d.EXPECT().Display(gomock.Any(), gomock.Any()).Return(nil)

	var out bytes.Buffer
	app, err := New([]string{"topviz", "-q", writeLog(t, topLog)}, &bytes.Buffer{}, WithDisplayer(d), WithLogger(logging.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("quiet run wrote %q", out.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDisplayer(ctrl) // no calls expected

	var errBuf bytes.Buffer
	missing := filepath.Join(t.TempDir(), "absent.log")
	app, err := New([]string{"topviz", missing}, &errBuf, WithDisplayer(d), WithLogger(logging.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.HasPrefix(errBuf.String(), "Error: open "+missing) {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestRun_DisplayFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDisplayer(ctrl)
	d.EXPECT().Display(gomock.Any(), gomock.Any()).
		Return(apperrors.RenderError{Backend: "terminal", Cause: errors.New("no tty")})

	var errBuf bytes.Buffer
	app, err := New([]string{"topviz", "-q", writeLog(t, topLog)}, &errBuf, WithDisplayer(d), WithLogger(logging.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d", code)
	}
	if !strings.Contains(errBuf.String(), "Error: terminal display: no tty") {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDisplayer(ctrl)
	d.EXPECT().Display(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ figure.Figure) error {
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app, err := New([]string{"topviz", "-q", writeLog(t, topLog)}, &bytes.Buffer{}, WithDisplayer(d), WithLogger(logging.Nop()))
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(ctx, &bytes.Buffer{}); code != apperrors.ExitErrorCanceled {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRun_LogFile(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDisplayer(ctrl)
	d.EXPECT().Display(gomock.Any(), gomock.Any()).Return(nil)

	logPath := filepath.Join(t.TempDir(), "topviz.log")
	malformed := "PID %CPU\n1 2 3\n"
	app, err := New([]string{"topviz", "-q", "--log-file", logPath, writeLog(t, malformed)}, &bytes.Buffer{}, WithDisplayer(d))
	if err != nil {
		t.Fatal(err)
	}
	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "extra fields dropped") {
		t.Errorf("log file = %q", data)
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"top.log", "-version"}, true},
		{[]string{"top.log"}, false},
		{[]string{"--", "--version"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	if buf.String() != "topviz "+Version+"\n" {
		t.Errorf("PrintVersion() = %q", buf.String())
	}
}
