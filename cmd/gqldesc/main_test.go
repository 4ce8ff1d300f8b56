package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	testlogr "github.com/go-logr/logr/testing"
	"github.com/vvakame/gqldesc/internal/log"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ctx := log.WithLogger(context.Background(), testlogr.NewTestLogger(t))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), err
}

func TestPrintCommand(t *testing.T) {
	out, err := runCommand(t, "print", "--sort", "-f", "../../internal/manifest/testdata/cache_control.yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, expect := range []string{"directive @cacheControl", "directive @tag", "@deprecated"} {
		if !strings.Contains(out, expect) {
			t.Errorf("%q is missing in:\n%s", expect, out)
		}
	}
	if strings.Contains(out, "debug") {
		t.Errorf("ignored argument should not be printed:\n%s", out)
	}
}

func TestDumpCommand(t *testing.T) {
	out, err := runCommand(t, "dump", "-f", "../../internal/manifest/testdata/cache_control.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "name: debug") {
		t.Errorf("dump should include ignored arguments:\n%s", out)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := runCommand(t, "print", "-f", "./testdata/missing.yaml")
	if err == nil {
		t.Errorf("missing manifest should fail")
	}
}
