package network

import "fmt"

// ConfigError reports a required per-element parameter that is missing or
// unusable for the requested analysis. It is fatal for the compile and never
// retried.
type ConfigError struct {
	Element string // element table, e.g. "ext_grid"
	ID      int
	Field   string
	Detail  string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s %d: parameter %q %s", e.Element, e.ID, e.Field, e.Detail)
	if e.Detail == "" {
		msg = fmt.Sprintf("%s %d: parameter %q needs to be specified", e.Element, e.ID, e.Field)
	}
	return msg
}
