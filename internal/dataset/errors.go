package dataset

import "fmt"

// LoadError reports a data source that is missing or malformed. It is fatal
// at startup.
type LoadError struct {
	Path   string
	Row    int // 1-based data row, 0 when the fault is not row specific
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load dataset %s", e.Path)
	if e.Row > 0 {
		msg += fmt.Sprintf(" (row %d)", e.Row)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
