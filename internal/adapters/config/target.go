package config

import (
	"bytes"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildConfigFilename is the Kconfig output of the firmware build.
const BuildConfigFilename = ".config"

const packagePrefix = "CONFIG_PACKAGE_"

// LoadTarget reads the target identity from the build configuration in dir.
// Without a build configuration only Dir is set.
func (l *Loader) LoadTarget(dir string) (domain.BuildTarget, error) {
	target := domain.BuildTarget{Dir: dir}

	path := filepath.Join(dir, BuildConfigFilename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the build directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			l.logger.Info("no build configuration at " + path)
			return target, nil
		}
		return target, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	sanitized, aliases := aliasKeys(data)
	vars, err := godotenv.Parse(bytes.NewReader(sanitized))
	if err != nil {
		return target, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	for alias, key := range aliases {
		if v, ok := vars[alias]; ok {
			delete(vars, alias)
			vars[key] = v
		}
	}

	target.Board = vars["CONFIG_TARGET_BOARD"]
	target.Subtarget = vars["CONFIG_TARGET_SUBTARGET"]
	target.Profile = vars["CONFIG_TARGET_PROFILE"]
	target.Version = vars["CONFIG_VERSION_NUMBER"]
	if target.Version == "" {
		target.Version = vars["CONFIG_VERSION_CODE"]
	}

	target.Selected = make(map[string]bool)
	for key, value := range vars {
		name, ok := strings.CutPrefix(key, packagePrefix)
		if ok && name != "" && value == "y" {
			target.Selected[name] = true
		}
	}

	return target, nil
}

// aliasKeys replaces Kconfig symbols that are not valid dotenv names (package names
// carry '-' and '+') with synthetic ones and returns the mapping back.
func aliasKeys(data []byte) ([]byte, map[string]string) {
	aliases := make(map[string]string)

	var buf bytes.Buffer
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		key, rest, ok := strings.Cut(trimmed, "=")
		if ok && !strings.HasPrefix(trimmed, "#") && !validKey(key) {
			alias := fmt.Sprintf("FWBOM_ALIAS_%d", i)
			aliases[alias] = strings.TrimSpace(key)
			line = alias + "=" + rest
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), aliases
}

func validKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r == '_' || r == '.':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
