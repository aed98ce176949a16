package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"numeric":        "must be a number",
	"len":            "must be %s characters long",
	"oneof":          "must be one of [%s]",
	"uuid":           "must be a valid UUID",
	"project_record": "must be a well-formed project record reference",
	"review_type":    "must be a recognised review type",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientQuestionSetUnavailable        = "the question set is currently unavailable, please try again later"
	ErrClientAnswersUnavailable            = "your saved answers are currently unavailable, please try again later"
	ErrClientModificationNotFound          = "the modification could not be found"
	ErrClientTransitionNotAllowed          = "this modification cannot move to the requested status"
	ErrClientRevisionAlreadyRequested      = "revisions have already been requested for this modification"
	ErrClientReasonRequired                = "a reason is required for this decision"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevURLParamValidationFailed = "URL parameter %s failed validation"
	ErrDevServerDeadlineExceeded   = "the server exceeded its processing deadline"
	ErrDevServerProcess            = "the server failed to process the operation"
	ErrDevCreateHTTPRequest        = "cannot build HTTP request to remote collaborator"
	ErrDevSendHTTPRequest          = "cannot send HTTP request to remote collaborator"
	ErrDevReadBody                 = "cannot read response body"

	ErrDevCMSFetchQuestionSet       = "CMS question set fetch did not succeed"
	ErrDevCMSFetchSection           = "CMS %s section lookup did not succeed"
	ErrDevCMSFetchDocumentSchema    = "CMS document metadata schema fetch did not succeed"
	ErrDevCMSDecodeResponse         = "cannot decode CMS %s response"
	ErrDevCMSRateLimiterWait        = "outbound CMS rate limiter wait aborted"
	ErrDevAnswerStoreFetch          = "respondent answer fetch did not succeed"
	ErrDevAnswerStoreSave           = "respondent answer save did not succeed"
	ErrDevAnswerStoreDecode         = "cannot decode respondent answer response"
	ErrDevDocumentStoreList         = "uploaded document listing did not succeed"
	ErrDevMalformedProjectRecord    = "identifier %q is not a well-formed project record reference"
	ErrDevMalformedReviewType       = "review type value is empty or unrecognised"
	ErrDevTransitionForbidden       = "transition %s -> %s rejected by guard: %s"
	ErrDevModificationNotFound      = "modification does not exist"
	ErrDevAuthTokenMissing          = "authorization token is missing from the request"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAPIKeyMismatch            = "provided API key does not match the configured key"

	// Mongo DB
	ErrDevDBFailedToFindDocument   = "database failed to find document"
	ErrDevDBFailedToInsertDocument = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument = "database failed to update document"
	ErrDevDBStringNotObjectID      = "string cannot be converted to ObjectID"

	// Redis
	ErrDevRedisGetNoData = "redis has no data for key: %s"
	ErrDevRedisGetData   = "redis failed to get data"
	ErrDevRedisSetData   = "redis failed to set data"
	ErrDevRedisDelete    = "redis failed to delete data"

	// Minio
	ErrDevMinioListObjects = "minio failed to list objects in bucket %s"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "rabbitmq failed to publish message to queue %s"
)
