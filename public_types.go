package mindly

import "github.com/mindly/mindly-client/internal/types"

// Public type aliases so SDK consumers can import only the mindly package.
type (
	// Requests
	RegisterRequest     = types.RegisterRequest
	LoginRequest        = types.LoginRequest
	CreateRecordRequest = types.CreateRecordRequest
	RecordPatch         = types.RecordPatch
	SuggestionRequest   = types.SuggestionRequest

	// Domain entities
	DailyRecord = types.DailyRecord
	Patient     = types.Patient
	AlertSignal = types.AlertSignal
	AuthResult  = types.AuthResult
	Suggestion  = types.Suggestion
)

// Role constants re-exported for role checks after login.
const (
	RolePatient      = types.RolePatient
	RolePsychologist = types.RolePsychologist
)
