package constvars

const (
	// RegexProjectRecord matches a project record reference: a seven digit
	// IRAS-style identifier with an optional "/N" modification suffix.
	RegexProjectRecord = `^\d{7}(/\d+)?$`
	RegexNumeric       = `^\d+$`
)
