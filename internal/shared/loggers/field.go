package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration      = "duration"
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"
	FieldErrorStack    = "error_stack"
	FieldErrorCode     = "error_code"

	FieldPartitionId = "partition_id"
	FieldBatchID     = "batch_id"
	FieldBatchSize   = "batch_size"
	FieldUserAgent   = "ua"
	FieldOperation   = "operation"
	FieldArchiveKey  = "archive_key"
	FieldRecordID    = "record_id"
)
