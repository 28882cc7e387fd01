package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"dynamic", VariantDynamic, false},
		{"STATIC", VariantStatic, false},
		{" static ", VariantStatic, false},
		{"", VariantDynamic, false},
		{"wobbly", VariantDynamic, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVariant) {
					t.Errorf("Expected ErrUnknownVariant, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// restoreConfig puts the package defaults back after a test mutates them.
func restoreConfig(t *testing.T) {
	t.Helper()
	c := *C
	debug := Debug
	t.Cleanup(func() {
		*C = c
		Debug = debug
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	restoreConfig(t)
	t.Setenv("COULOMB_WIDTH", "1024")
	t.Setenv("COULOMB_HEIGHT", "-5")
	t.Setenv("COULOMB_VARIANT", "static")
	t.Setenv("COULOMB_DEBUG", "true")
	t.Setenv("COULOMB_SKIP_MENU", "maybe")

	if err := LoadEnv(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if C.Width != 1024 {
		t.Errorf("Expected width 1024, got %d", C.Width)
	}
	if C.Height != 720 {
		t.Errorf("Expected invalid height ignored, got %d", C.Height)
	}
	if C.Variant != VariantStatic {
		t.Errorf("Expected static variant, got %v", C.Variant)
	}
	if !Debug.Overlay {
		t.Error("Expected debug overlay enabled")
	}
	if Debug.SkipMenu {
		t.Error("Expected unparsable bool ignored")
	}
}

func TestLoadEnvBadVariantKeepsDefault(t *testing.T) {
	restoreConfig(t)
	t.Setenv("COULOMB_VARIANT", "wobbly")

	if err := LoadEnv(); err != nil {
		t.Fatalf("Expected a bad variant to be a warning, got %v", err)
	}
	if C.Variant != VariantDynamic {
		t.Errorf("Expected dynamic variant kept, got %v", C.Variant)
	}
}

func TestLoadEnvFile(t *testing.T) {
	restoreConfig(t)
	// godotenv never overrides variables that are already set
	t.Setenv("COULOMB_TPS", "")
	os.Unsetenv("COULOMB_TPS")
	t.Setenv("COULOMB_HEIGHT", "600")

	path := filepath.Join(t.TempDir(), ".env")
	content := "COULOMB_TPS=30\nCOULOMB_HEIGHT=480\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("COULOMB_TPS") })

	if err := LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("Expected missing file to be skipped, got %v", err)
	}
	if C.TPS != 30 {
		t.Errorf("Expected TPS 30 from file, got %d", C.TPS)
	}
	if C.Height != 600 {
		t.Errorf("Expected process env to win over the file, got %d", C.Height)
	}
}

func TestLoadEnvMalformedFile(t *testing.T) {
	restoreConfig(t)
	path := t.TempDir() // a directory cannot be parsed as a dotenv file

	err := LoadEnv(path)
	if err == nil {
		t.Fatal("Expected an error for an unreadable env file")
	}
}
