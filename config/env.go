package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrUnknownVariant is returned for obstacle variant names that are not recognised.
var ErrUnknownVariant = errors.New("unknown obstacle variant")

// ParseVariant maps "dynamic" or "static" (any case) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dynamic", "":
		return VariantDynamic, nil
	case "static":
		return VariantStatic, nil
	}
	return VariantDynamic, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// LoadEnv applies COULOMB_* overrides from the process environment and from
// the given dotenv files. A missing file is not an error.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	C.Width = getEnvInt("COULOMB_WIDTH", C.Width)
	C.Height = getEnvInt("COULOMB_HEIGHT", C.Height)
	C.TPS = getEnvInt("COULOMB_TPS", C.TPS)

	if name := os.Getenv("COULOMB_VARIANT"); name != "" {
		v, err := ParseVariant(name)
		if err != nil {
			log.Printf("Warning: %v, keeping %s", err, C.Variant)
		} else {
			C.Variant = v
		}
	}

	Debug.SkipMenu = getEnvBool("COULOMB_SKIP_MENU", Debug.SkipMenu)
	Debug.Overlay = getEnvBool("COULOMB_DEBUG", Debug.Overlay)
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
		log.Printf("Warning: ignoring %s=%q", key, value)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Warning: ignoring %s=%q", key, value)
	}
	return defaultValue
}
