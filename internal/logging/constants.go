package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output easy to filter and aggregate.
const (
	FieldSource   = "source"
	FieldLabel    = "label"
	FieldEndpoint = "endpoint"
	FieldRows     = "rows"
	FieldRecords  = "records"
	FieldRunID    = "run_id"
	FieldReason   = "reason"
	FieldKey      = "key"
	FieldFile     = "file_path"
	FieldCount    = "count"
)
