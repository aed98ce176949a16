package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_JOURNEY_ID_KEY           ContextKey = "journey_id"
	CONTEXT_JOURNEY_CONTEXT_KEY      ContextKey = "journey_context"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	REQUEST_ID_PREFIX = "MODS_SVC_"
)

const (
	RoleApplicant  = "Applicant"
	RoleSponsor    = "Sponsor"
	RoleAuthoriser = "Authoriser"
	RoleReviewBody = "Review Body"
	RoleSuperadmin = "Superadmin"
)

// View contexts for the trimming and surfacing resolver. Review screens
// want the surfacing question shown as the change summary, edit screens
// do not.
const (
	ViewContextEdit   = "edit"
	ViewContextReview = "review"
)

const (
	ReviewTypeNoneRequired = "none"
)

const (
	MongoCollectionModifications = "modifications"
)
