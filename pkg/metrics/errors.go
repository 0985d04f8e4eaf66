package metrics

import "errors"

// ErrRegisterCollector is returned when a collector cannot be registered.
var ErrRegisterCollector = errors.New("failed to register metrics collector")
