package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds parameters for new patient registration.
type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Phone    string `json:"telefone"`
}

// LoginRequest holds credentials for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// CreateRecordRequest holds parameters for a new daily record. PatientEmail
// identifies the owner; Date must already be in ISO yyyy-mm-dd form.
type CreateRecordRequest struct {
	PatientEmail     string
	Date             string
	Description      string
	Mood             string
	StressLevel      int
	SleepQuality     int
	PhysicalActivity bool
	Gratitude        string
}

// RecordPatch is a partial update: only non-nil fields are sent, and the
// activity flag is re-encoded only when present.
type RecordPatch struct {
	Date             *string
	Description      *string
	Mood             *string
	StressLevel      *int
	SleepQuality     *int
	PhysicalActivity *bool
	Gratitude        *string
}

// SuggestionRequest carries the optional context for /ia/sugestoes. Nil
// fields are serialized as JSON null, matching what the backend expects.
type SuggestionRequest struct {
	Mood        *string `json:"moodDoDia"`
	StressLevel *int    `json:"nivelEstresse"`
	Description *string `json:"descricaoDia"`
}
