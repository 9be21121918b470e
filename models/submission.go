package models

// Submission is one validated contact record. Built per request, never retained.
type Submission struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Complete reports whether every field survived extraction non-empty.
func (s Submission) Complete() bool {
	return s.Name != "" && s.Email != "" && s.Phone != ""
}

// ValidationResult holds per-field outcomes for one submission.
type ValidationResult struct {
	NameOK  bool
	EmailOK bool
	PhoneOK bool
}

// OK reports the aggregate outcome.
func (v ValidationResult) OK() bool {
	return v.NameOK && v.EmailOK && v.PhoneOK
}
