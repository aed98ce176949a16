package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingModificationIDKey = "modification_id"
	LoggingChangeIDKey       = "change_id"
	LoggingSectionIDKey      = "section_id"
	LoggingStatusKey         = "status"
)

const (
	ResponseUnknown = "unknown"
)
