// Package wire is the sole translation point between the backend's JSON
// shapes and the in-process domain types. The backend encodes the
// physical-activity flag as a string enum ("SIM"/"NAO"); in-process code only
// ever sees a bool.
package wire

import (
	"encoding/json"
	"strings"

	"github.com/mindly/mindly-client/internal/types"
)

// Activity flag wire values.
const (
	ActivityYes = "SIM"
	ActivityNo  = "NAO"
)

// Record is the backend JSON shape for a daily record.
type Record struct {
	ID               int64   `json:"id"`
	Date             string  `json:"dataRegistro"`
	Description      string  `json:"descricaoDia"`
	Mood             string  `json:"moodDoDia"`
	StressLevel      int     `json:"nivelEstresse"`
	SleepQuality     int     `json:"qualidadeSono"`
	PhysicalActivity *string `json:"atividadeFisica"`
	Gratitude        *string `json:"motivoGratidao,omitempty"`
	ClinicianNote    *string `json:"avaliacaoPsicologo,omitempty"`
}

// CreatePayload is the POST /registros body.
type CreatePayload struct {
	PatientEmail     string  `json:"emailPaciente"`
	Date             string  `json:"dataRegistro"`
	Description      string  `json:"descricaoDia"`
	Mood             string  `json:"moodDoDia"`
	StressLevel      int     `json:"nivelEstresse"`
	SleepQuality     int     `json:"qualidadeSono"`
	PhysicalActivity string  `json:"atividadeFisica"`
	Gratitude        *string `json:"motivoGratidao"`
}

// UpdatePayload is the PUT /registros/{id} body. Every field is optional;
// omitted fields are not sent at all. Gratitude is raw JSON so a supplied
// blank note can be carried as an explicit null, which is how the backend
// clears a stored note.
type UpdatePayload struct {
	Date             *string         `json:"dataRegistro,omitempty"`
	Description      *string         `json:"descricaoDia,omitempty"`
	Mood             *string         `json:"moodDoDia,omitempty"`
	StressLevel      *int            `json:"nivelEstresse,omitempty"`
	SleepQuality     *int            `json:"qualidadeSono,omitempty"`
	PhysicalActivity *string         `json:"atividadeFisica,omitempty"`
	Gratitude        json.RawMessage `json:"motivoGratidao,omitempty"`
}

// DecodeActivity maps the wire string enum to a bool. "sim", "true" and "1"
// (case-insensitive) are true; everything else, including absent/null, is
// false. Unknown encodings never produce an error.
func DecodeActivity(v *string) bool {
	if v == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(*v)) {
	case "sim", "true", "1":
		return true
	default:
		return false
	}
}

// EncodeActivity maps a bool back to the wire enum.
func EncodeActivity(b bool) string {
	if b {
		return ActivityYes
	}
	return ActivityNo
}

// ToRecord converts a wire record into the client shape.
func ToRecord(w Record) types.DailyRecord {
	r := types.DailyRecord{
		ID:               w.ID,
		Date:             w.Date,
		Description:      w.Description,
		Mood:             w.Mood,
		StressLevel:      w.StressLevel,
		SleepQuality:     w.SleepQuality,
		PhysicalActivity: DecodeActivity(w.PhysicalActivity),
	}
	if w.Gratitude != nil {
		r.Gratitude = *w.Gratitude
	}
	if w.ClinicianNote != nil {
		r.ClinicianNote = *w.ClinicianNote
	}
	return r
}

// ToRecords converts a slice of wire records, preserving server order.
func ToRecords(ws []Record) []types.DailyRecord {
	out := make([]types.DailyRecord, 0, len(ws))
	for _, w := range ws {
		out = append(out, ToRecord(w))
	}
	return out
}

// FromCreateRequest builds the POST body. An empty gratitude note is sent as
// JSON null rather than "".
func FromCreateRequest(req types.CreateRecordRequest) CreatePayload {
	p := CreatePayload{
		PatientEmail:     req.PatientEmail,
		Date:             req.Date,
		Description:      req.Description,
		Mood:             req.Mood,
		StressLevel:      req.StressLevel,
		SleepQuality:     req.SleepQuality,
		PhysicalActivity: EncodeActivity(req.PhysicalActivity),
	}
	if g := strings.TrimSpace(req.Gratitude); g != "" {
		p.Gratitude = &g
	}
	return p
}

// FromPatch builds the PUT body, carrying only the fields the patch supplies.
// The activity flag is re-encoded only when present, and a supplied gratitude
// note that trims to empty becomes JSON null, same as on create.
func FromPatch(patch types.RecordPatch) UpdatePayload {
	p := UpdatePayload{
		Date:         patch.Date,
		Description:  patch.Description,
		Mood:         patch.Mood,
		StressLevel:  patch.StressLevel,
		SleepQuality: patch.SleepQuality,
	}
	if patch.PhysicalActivity != nil {
		enc := EncodeActivity(*patch.PhysicalActivity)
		p.PhysicalActivity = &enc
	}
	if patch.Gratitude != nil {
		if g := strings.TrimSpace(*patch.Gratitude); g != "" {
			enc, _ := json.Marshal(g)
			p.Gratitude = enc
		} else {
			p.Gratitude = json.RawMessage("null")
		}
	}
	return p
}
