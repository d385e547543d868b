package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExtension(t *testing.T) {
	tempDir := t.TempDir()

	// A fake mcs-hello extension that exits with a distinctive code.
	script := "#!/bin/sh\nexit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "mcs-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write mcs-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("hello", nil)
	if !found {
		t.Fatal("expected mcs-hello to be found in PATH")
	}
	if code != 3 {
		t.Errorf("RunExtension exit code = %d, want 3", code)
	}
}

func TestRunExtensionNotFound(t *testing.T) {
	found, code := RunExtension("no-such-extension", nil)
	if found || code != 0 {
		t.Errorf("RunExtension() = (%v, %d), want (false, 0)", found, code)
	}
}

func TestRunExtensionEnv(t *testing.T) {
	tempDir := t.TempDir()
	marker := filepath.Join(tempDir, "env.txt")

	// The extension records the exported verbose flag.
	script := "#!/bin/sh\necho \"$" + EnvVerbose + "\" > " + marker + "\n"
	if err := os.WriteFile(filepath.Join(tempDir, "mcs-env"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write mcs-env: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("env", nil)
	if !found || code != 0 {
		t.Fatalf("RunExtension() = (%v, %d), want (true, 0)", found, code)
	}
	got, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("extension did not write its marker: %v", err)
	}
	if string(got) != "false\n" {
		t.Errorf("exported %s = %q, want %q", EnvVerbose, string(got), "false\n")
	}
}
