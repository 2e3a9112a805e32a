package internal

// ExtractorSource reads one candidate value from the request.
// It reports false when the value is absent or empty.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries sources in order and returns the first hit.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor over sources.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false).
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Header(name)
		return v, v != ""
	}
}

// FromHeaders reads the first present header among names.
func FromHeaders(names ...string) []ExtractorSource {
	sources := make([]ExtractorSource, len(names))
	for i, n := range names {
		sources[i] = FromHeader(n)
	}
	return sources
}
