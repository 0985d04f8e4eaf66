package rows

import "errors"

var (
	ErrDecodeJSON        = errors.New("failed to decode json rows")
	ErrDecodeYAML        = errors.New("failed to decode yaml rows")
	ErrDecodeCSV         = errors.New("failed to decode csv rows")
	ErrUnsupportedFormat = errors.New("unsupported rows format")
	ErrOpenFile          = errors.New("failed to open rows file")
)
