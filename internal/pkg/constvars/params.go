package constvars

const (
	URLParamModificationID = "modification_id"
	URLParamChangeID       = "change_id"
	URLParamSectionID      = "section_id"
)

const (
	URLQueryParamSection       = "section"
	URLQueryParamViewContext   = "view_context"
	URLQueryParamProjectRecord = "project_record"
)
