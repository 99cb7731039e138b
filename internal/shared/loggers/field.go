package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldOutletID  = "outlet_id"
	FieldTimeRange = "time_range"
	FieldEventType = "event_type"
	FieldEventHash = "event_hash"
	FieldCategory  = "category"
)
