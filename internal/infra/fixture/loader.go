package fixture

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"salon-dashboard/internal/infra"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Load reads the seed document once at startup.
func Load(logger *slog.Logger, path string) (*File, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, infra.WrapStoreErr(logger, infra.KindUnsupportedFormat, "unsupported fixture extension "+filepath.Ext(path), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindFixtureUnreadable, "failed to read fixture "+path, err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindFixtureInvalid, "failed to decode fixture "+path, err)
	}

	logger.Info("fixture loaded",
		slog.String("path", path),
		slog.Int("bookings", len(f.Bookings)),
		slog.Int("employees", len(f.Employees)),
		slog.Int("users", len(f.Users)),
	)
	return f, nil
}

func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, infra.NewStoreErr(infra.KindUnsupportedFormat, "unknown fixture format "+string(format))
	}
	return &f, nil
}
