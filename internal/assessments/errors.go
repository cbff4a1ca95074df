package assessments

import "errors"

// Repository errors.
var (
	ErrAssessmentNotFound = errors.New("assessment not found")
)
