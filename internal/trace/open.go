package trace

import (
	"fmt"
	"io"
)

// Open constructs a Reader for the given format ("text", "csv", or
// "yaml") over r.
func Open(format string, r io.Reader) (Reader, error) {
	switch format {
	case "", "text":
		return NewTextReader(r), nil
	case "csv":
		return NewCSVReader(r), nil
	case "yaml":
		return NewYAMLReader(r)
	default:
		return nil, fmt.Errorf("unsupported trace format: %s", format)
	}
}
