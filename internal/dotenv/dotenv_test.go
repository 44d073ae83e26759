package dotenv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FindsFileInAncestor(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	envPath := filepath.Join(root, ".env")
	if err := os.WriteFile(envPath, []byte("DOTENV_TEST_KEY=from_file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_TEST_KEY", "")
	os.Unsetenv("DOTENV_TEST_KEY")

	path, err := Load(nested)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != envPath {
		t.Errorf("Load() path = %q, want %q", path, envPath)
	}
	if got := os.Getenv("DOTENV_TEST_KEY"); got != "from_file" {
		t.Errorf("DOTENV_TEST_KEY = %q, want %q", got, "from_file")
	}
}

func TestLoad_DoesNotOverrideExistingEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DOTENV_KEEP_KEY=from_file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_KEEP_KEY", "from_env")

	if _, err := Load(dir); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := os.Getenv("DOTENV_KEEP_KEY"); got != "from_env" {
		t.Errorf("DOTENV_KEEP_KEY = %q, want %q (env must win over file)", got, "from_env")
	}
}

func TestLoad_NoFileFound(t *testing.T) {
	path, err := Load(t.TempDir())
	if err != nil {
		t.Errorf("Load() error = %v, want nil for missing .env", err)
	}
	if path != "" {
		t.Errorf("Load() path = %q, want empty", path)
	}
}
