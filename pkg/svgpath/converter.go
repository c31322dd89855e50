package svgpath

import (
	"golang.org/x/exp/slog"
)

// Converter carries the state of one conversion run: the transform cache
// and the logger that receives diagnostics about malformed input. The zero
// value is not usable; use NewConverter.
type Converter struct {
	cache  *TransformCache
	logger *slog.Logger
}

// NewConverter returns a Converter with an empty cache. A nil logger
// discards diagnostics.
func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{
		cache:  NewTransformCache(),
		logger: logger,
	}
}

// ParseTransform is ParseTransform, memoized by the exact expression text.
func (c *Converter) ParseTransform(transform string) Matrix {
	if m, ok := c.cache.Get(transform); ok {
		return m
	}
	m := parseTransform(transform, c.logger)
	c.cache.Put(transform, m)
	return m
}

// TransformPathData is TransformPathData with diagnostics sent to the
// converter's logger.
func (c *Converter) TransformPathData(pathData string, m Matrix) string {
	return transformPathData(pathData, m, &state{data: pathData, logger: c.logger})
}

// ParseCommands is ParseCommands with diagnostics sent to the converter's
// logger.
func (c *Converter) ParseCommands(pathData string) []Command {
	s := &state{data: pathData, logger: c.logger}
	return s.scanCommands()
}

// FormatCommands is FormatCommands with out of range coordinates reported
// to the converter's logger.
func (c *Converter) FormatCommands(commands []Command) string {
	return formatCommands(commands, c.logger)
}

// CachedTransforms returns the number of distinct expressions parsed so far.
func (c *Converter) CachedTransforms() int {
	return c.cache.Len()
}
