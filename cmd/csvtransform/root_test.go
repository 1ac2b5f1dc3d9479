package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/csvtransform/internal/core"
)

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(in, []byte("Date,Workout Name\n2023-05-01 07:15:42,Leg Day\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INPUT_FILE", filepath.Join(dir, "ignored.csv"))
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--input", in, "--output", out})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(got), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[1], `"2023-05-01 12:00:00","Leg Day",""`) {
		t.Errorf("data row = %q", lines[1])
	}
}

func TestRootCmd_StageFailure(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--input", filepath.Join(dir, "missing.csv"), "--output", filepath.Join(dir, "out.csv")})
	err := cmd.ExecuteContext(context.Background())

	var se *core.StageError
	if !errors.As(err, &se) || se.Stage != core.PhaseReading {
		t.Fatalf("error = %v, want reading StageError", err)
	}
}

func TestRootCmd_UnknownProfile(t *testing.T) {
	t.Setenv("CSV_PROFILE", "strong")
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unknown profile") {
		t.Fatalf("error = %v, want unknown profile", err)
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Setenv("CSV_DELIMITER", "ab")

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "CSV_DELIMITER") {
		t.Fatalf("error = %v, want CSV_DELIMITER validation failure", err)
	}
}

func TestProfilesCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"profiles"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "hevy") || !strings.Contains(out, "date_noon") {
		t.Errorf("profiles output = %q", out)
	}
}
