package util

import "errors"

// Error strings double as API-facing messages, so they keep the exact
// wording the frontend matches on.
var (
	ErrEmailRegistered    = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("Profile not found")
	ErrAssessmentNotFound = errors.New("Assessment not found")
	ErrNoAssessmentIDs    = errors.New("No assessments selected for deletion")
	ErrMissingStatusField = errors.New("Missing status field")
	ErrMissingLevelField  = errors.New("Missing level field")
	ErrNoFileUploaded     = errors.New("No file uploaded")
)
