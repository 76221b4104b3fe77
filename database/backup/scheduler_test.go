package backup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ImRehmankhan/nextcodehub/metal/env"
)

type fakeRunner struct {
	mu     sync.Mutex
	calls  []runnerCall
	runErr error
}

type runnerCall struct {
	name string
	args []string
	env  map[string]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, envVars map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := runnerCall{name: name, args: append([]string(nil), args...), env: map[string]string{}}
	for k, v := range envVars {
		call.env[k] = v
	}

	f.calls = append(f.calls, call)

	return f.runErr
}

func testEnvironment(dir, schedule string) *env.Environment {
	return &env.Environment{
		DB: env.DBEnvironment{
			UserName:     "blogadmin",
			UserPassword: "secretpass",
			DatabaseName: "blogdb",
			Port:         5432,
			Host:         "db.example.test",
			SSLMode:      "require",
			TimeZone:     "UTC",
		},
		Backup: env.BackupEnvironment{
			Schedule: schedule,
			Dir:      dir,
		},
	}
}

func TestNewSchedulerValidatesInput(t *testing.T) {
	if _, err := NewScheduler(nil); err == nil {
		t.Fatalf("expected error when environment is nil")
	}

	if _, err := NewScheduler(testEnvironment(t.TempDir(), "")); err == nil {
		t.Fatalf("expected error when backups are disabled")
	}

	if _, err := NewScheduler(testEnvironment(t.TempDir(), "not-a-cron")); err == nil {
		t.Fatalf("expected cron validation error")
	}
}

func TestSchedulerRunInvokesPgDump(t *testing.T) {
	tmpDir := t.TempDir()
	now := func() time.Time { return time.Date(2026, time.March, 9, 3, 4, 5, 0, time.UTC) }
	runner := &fakeRunner{}

	scheduler, err := NewScheduler(
		testEnvironment(tmpDir, "@daily"),
		WithCommandRunner(runner),
		WithNow(now),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("unexpected error creating scheduler: %v", err)
	}

	if err := scheduler.Run(context.Background()); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(runner.calls))
	}

	call := runner.calls[0]

	if call.name != "pg_dump" {
		t.Fatalf("unexpected command name: %s", call.name)
	}

	expectedFile := filepath.Join(tmpDir, "backup-20260309T030405Z.sql")

	var gotFile string
	for i, arg := range call.args {
		if arg == "--file" && i+1 < len(call.args) {
			gotFile = call.args[i+1]
		}
	}

	if gotFile != expectedFile {
		t.Fatalf("unexpected backup file: %s", gotFile)
	}

	if call.env["PGPASSWORD"] != "secretpass" || call.env["PGSSLMODE"] != "require" {
		t.Fatalf("unexpected env: %+v", call.env)
	}
}

func TestSchedulerRunSurfacesFailures(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("pg_dump exploded")}

	scheduler, err := NewScheduler(
		testEnvironment(t.TempDir(), "@daily"),
		WithCommandRunner(runner),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("unexpected error creating scheduler: %v", err)
	}

	if err := scheduler.Run(context.Background()); err == nil {
		t.Fatalf("expected runner failure to surface")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	scheduler, err := NewScheduler(
		testEnvironment(t.TempDir(), "@daily"),
		WithCommandRunner(&fakeRunner{}),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithJobTimeout(time.Second),
	)
	if err != nil {
		t.Fatalf("unexpected error creating scheduler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	if err := scheduler.Start(ctx); err == nil {
		t.Fatalf("expected double start to fail")
	}

	scheduler.Stop()

	// Stopping twice is a no-op.
	scheduler.Stop()
}
