package cfg

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// Config holds the knobs of one conversion run. Zero values are not the
// defaults; start from Default.
type Config struct {
	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `toml:"log_level"`

	// ScaleStrokeWidth scales stroke-width along with the geometry when a
	// transform is baked into an element.
	ScaleStrokeWidth bool `toml:"scale_stroke_width"`

	// ConvertPolygons turns transformed polygon and polyline elements into
	// paths. When off, they keep their transform attribute.
	ConvertPolygons bool `toml:"convert_polygons"`

	// IndexMargin pads the bounds of the nearest-element index so points
	// on the edge are not dropped.
	IndexMargin float64 `toml:"index_margin"`
}

func Default() Config {
	return Config{
		LogLevel:         "warn",
		ScaleStrokeWidth: true,
		ConvertPolygons:  true,
		IndexMargin:      10,
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, xerrors.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, xerrors.Errorf("parse config %s: %w", path, err)
	}
	if _, err := c.Level(); err != nil {
		return c, err
	}
	return c, nil
}

// Level returns LogLevel as a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, xerrors.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
