package dataset

import "fmt"

// DataSourceError indicates the dataset file is missing, unreadable, or malformed.
// It is fatal for the session: nothing downstream can run without the table.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	if e == nil {
		return "data source error"
	}
	if e.Path != "" {
		return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("data source: %v", e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }
