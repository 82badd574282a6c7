package gallery

import (
	"strconv"
	"strings"

	"github.com/archivomural/murales-backend/internal/config"
)

// ParseDimensions converts a free-text dimensions string such as
// "2m x 3m" into internal layout units. The separator is a
// case-insensitive "x" with arbitrary surrounding whitespace; a trailing
// unit suffix is stripped from each side. If fewer than two numeric
// tokens survive, both sides fall back to the configured defaults.
// Malformed input never errors; layout must not block rendering.
func ParseDimensions(medidas string, cfg config.GalleryConfig) (width, height float64) {
	values := make([]float64, 0, 2)
	for _, token := range strings.Split(strings.ToLower(medidas), "x") {
		token = strings.TrimSpace(token)
		token = strings.TrimSuffix(token, "m")
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil || v <= 0 {
			continue
		}
		values = append(values, v)
		if len(values) == 2 {
			break
		}
	}

	if len(values) < 2 {
		return cfg.DefaultWidth, cfg.DefaultHeight
	}
	return values[0] * cfg.DimensionScale, values[1] * cfg.DimensionScale
}
