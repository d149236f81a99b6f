package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func TestExtensionEnv(t *testing.T) {
	env := extensionEnv()
	for _, want := range []string{EnvPolicy + "=cef", EnvNormalization + "=weekly", EnvWorkers + "=4", EnvVerbose + "=false"} {
		if !slices.Contains(env, want) {
			t.Errorf("extensionEnv() = %v want it to contain %q", env, want)
		}
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension is a shell script")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\necho \"$" + EnvPolicy + " $1\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "ycs-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("cannot write extension: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	found, code := RunExtension("hello", []string{"world"})
	if !found || code != 3 {
		t.Errorf("RunExtension(hello) = %v, %d want true, 3", found, code)
	}
	if got, want := buf.String(), "cef world\n"; got != want {
		t.Errorf("RunExtension(hello) printed %q want %q", got, want)
	}

	if found, _ := RunExtension("missing-extension", nil); found {
		t.Errorf("RunExtension(missing-extension) found an extension")
	}
}
