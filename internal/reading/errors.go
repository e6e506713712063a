package reading

// DataSourceError wraps a failure to fetch or decode the dataset. Its message
// is the underlying error's, unchanged.
type DataSourceError struct {
	Err error
}

func (e *DataSourceError) Error() string {
	return e.Err.Error()
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
