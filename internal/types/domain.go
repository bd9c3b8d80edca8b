package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// DailyRecord is one patient's daily self-reported wellness entry as used
// in-process. The physical-activity flag is a plain bool here; the backend's
// string-enum encoding never leaves the wire package.
type DailyRecord struct {
	ID               int64  `json:"id"`
	Date             string `json:"date"` // ISO yyyy-mm-dd
	Description      string `json:"description"`
	Mood             string `json:"mood"` // emoji-prefixed label, opaque
	StressLevel      int    `json:"stressLevel"`
	SleepQuality     int    `json:"sleepQuality"`
	PhysicalActivity bool   `json:"physicalActivity"`
	Gratitude        string `json:"gratitude,omitempty"`
	ClinicianNote    string `json:"clinicianNote,omitempty"` // read-only for patients
}

// Patient is owned by the backend; email is the natural key used by most
// endpoints. The observation note is overwritten wholesale on save.
type Patient struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	Email       string `json:"email"`
	Phone       string `json:"telefone"`
	Observation string `json:"observacao,omitempty"`
}

// AlertSignal is a read-only projection computed server-side when a patient
// record trips an alert rule. The rule itself is opaque to this client.
type AlertSignal struct {
	PatientID   int64  `json:"pacienteId"`
	PatientName string `json:"pacienteNome"`
	Phone       string `json:"telefone"`
	Mood        string `json:"moodDia"`
	Description string `json:"descricaoDia"`
}

// Role values returned by /auth/login.
const (
	RolePatient      = "PACIENTE"
	RolePsychologist = "PSICOLOGO"
)

// AuthResult is the login/registration outcome: identity plus bearer token.
type AuthResult struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Suggestion is the AI mood-support reply for a chat turn.
type Suggestion struct {
	Text string `json:"sugestao"`
}
