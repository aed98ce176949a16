package models

// DocumentRef references one uploaded supporting document plus its captured
// metadata answers. Metadata completeness is evaluated against the document
// metadata schema with mandatory-only validation.
type DocumentRef struct {
	FileName  string   `json:"file_name"`
	ObjectKey string   `json:"object_key"`
	Size      int64    `json:"size"`
	Answers   []Answer `json:"answers,omitempty"`
}

// DocumentCompleteness is the per-document outcome of the metadata check,
// ordered deterministically by file name.
type DocumentCompleteness struct {
	FileName string   `json:"file_name"`
	Complete bool     `json:"complete"`
	Errors   ErrorSet `json:"errors,omitempty"`
}
