package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunTogglesLink(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{"app_v1": "one", "app_v2": "two"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	link := filepath.Join(dir, "app_current")
	if err := os.Symlink(filepath.Join(dir, "app_v1"), link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	code := run([]string{"-d", dir, "-t", "app_current", "-p", "app_v1", "-p", "app_v2"})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	raw, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("readlink: %v", err)
	}
	if filepath.Base(raw) != "app_v2" {
		t.Fatalf("expected link at app_v2, got %s", raw)
	}
}

func TestRunReportsUsageFailure(t *testing.T) {
	if code := run([]string{"--bogus"}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestMainUsesExitFunc(t *testing.T) {
	captured := -1
	exitFunc = func(code int) { captured = code }
	defer func() { exitFunc = os.Exit }()

	os.Args = []string{"lntoggle", "--bogus"}
	main()
	if captured != 1 {
		t.Fatalf("expected exit code 1 via exitFunc, got %d", captured)
	}
}
