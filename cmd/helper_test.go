package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// run executes a fresh command with args, and returns what it printed.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %v: %v", c.Name(), args, err)
	}
	status := c.Execute(context.Background(), f)
	return buf.String(), status
}

// writeFile writes content in a file of a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", p, err)
	}
	return p
}

const dividendsJSONL = `{"ticker":"AAA","ex_date":"2025-01-10","raw_amount":"0.15","split_adjusted_amount":null}
{"ticker":"AAA","ex_date":"2025-02-10","raw_amount":"0.15","split_adjusted_amount":null}
{"ticker":"AAA","ex_date":"2025-03-10","raw_amount":"0.15","split_adjusted_amount":null}
{"ticker":"AAA","ex_date":"2025-04-10","raw_amount":"0.15","split_adjusted_amount":null}
{"id":"b1","ticker":"BBB","ex_date":"2025-01-03","raw_amount":0.05}
{"id":"b2","ticker":"BBB","ex_date":"2025-01-10","raw_amount":0.05}
{"id":"b3","ticker":"BBB","ex_date":"2025-01-17","raw_amount":0.05}
`
