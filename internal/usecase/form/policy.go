package form

import (
	"fmt"
	"strings"
)

// PostSubmitPolicy is what the client should do after a successful submit.
// All three behaviors shipped at some point; the choice is configuration,
// not code.
type PostSubmitPolicy string

const (
	PolicyNone            PostSubmitPolicy = "none"
	PolicyReload          PostSubmitPolicy = "reload"
	PolicyRedirectReports PostSubmitPolicy = "redirect-reports"
)

// Hint renders the policy as the `next` field of a submit response: empty
// for no-op, "reload", or the reports path to navigate to.
func (p PostSubmitPolicy) Hint(reportsPath string) string {
	switch p {
	case PolicyReload:
		return "reload"
	case PolicyRedirectReports:
		return reportsPath
	}
	return ""
}

// ValidationError carries the per-field problems of a rejected submit.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		fields[i] = p.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
