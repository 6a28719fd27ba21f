package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != DefaultTheme {
		t.Fatalf("expected default %s to be %q, got %q", KeyTheme, DefaultTheme, got)
	}
	if got := GetString(KeyMode); got != "system" {
		t.Fatalf("expected default %s to be system, got %q", KeyMode, got)
	}
	if got := GetString(KeyOutputFormat); got != "rich" {
		t.Fatalf("expected default %s to be rich, got %q", KeyOutputFormat, got)
	}
	if got := GetString(KeyHistoryPath); got != "" {
		t.Fatalf("expected default %s to be empty, got %q", KeyHistoryPath, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "web", "admin")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, ".contrastguard", "config.yaml"), `
theme: nord
output:
  format: project
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: dracula
mode: dark
output:
  format: user
`)

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "nord" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if got := GetString(KeyOutputFormat); got != "project" {
		t.Fatalf("expected project config to win for %s, got %q", KeyOutputFormat, got)
	}
	if got := GetString(KeyMode); got != "dark" {
		t.Fatalf("expected user config to supply %s, got %q", KeyMode, got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".contrastguard", "config.yaml")
	writeFile(t, projectCfg, `
mode: light
history:
  path: /project/history.db
`)

	t.Setenv("CG_MODE", "dark")
	t.Setenv("CG_HISTORY_PATH", "/env/history.db")

	if err := Initialize(
		WithWorkingDir(tmp),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "missing.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyMode); got != "dark" {
		t.Fatalf("expected environment variable to override %s, got %q", KeyMode, got)
	}
	if got := GetString(KeyHistoryPath); got != "/env/history.db" {
		t.Fatalf("expected env override for %s, got %q", KeyHistoryPath, got)
	}

	if err := ApplyOverrides(map[string]any{KeyMode: "light"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetString(KeyMode); got != "light" {
		t.Fatalf("expected CLI override to set %s=light, got %q", KeyMode, got)
	}
}

func TestInitializeRejectsDirectoryConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	err := Initialize(WithWorkingDir(tmp), WithUserConfig(tmp))
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestSaveThemeAndModeWriteUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "nested", "config.yaml")
	setUserConfigPathOverride(userCfg)
	writeFile(t, userCfg, "output:\n  format: plain\n")

	if err := SaveTheme("gruvbox"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	if err := SaveMode("dark"); err != nil {
		t.Fatalf("SaveMode returned error: %v", err)
	}

	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	content := string(data)
	for _, want := range []string{"theme: gruvbox", "mode: dark", "format: plain"} {
		if !strings.Contains(content, want) {
			t.Errorf("saved config missing %q:\n%s", want, content)
		}
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
