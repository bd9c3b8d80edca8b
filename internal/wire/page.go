package wire

import (
	"encoding/json"

	"github.com/mindly/mindly-client/internal/types"
)

// The backend historically answered list endpoints with either a bare JSON
// array or a Spring pagination envelope. The envelope is canonical; the bare
// array is a legacy shape. Anything else degrades to an empty page instead of
// failing, so callers always receive a renderable list.

type recordEnvelope struct {
	Content []Record `json:"content"`
	types.PageMeta
}

type patientEnvelope struct {
	Content []types.Patient `json:"content"`
	types.PageMeta
}

// DecodeRecordPage normalizes a list-records response body.
func DecodeRecordPage(body []byte) types.RecordPage {
	var env recordEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Content != nil {
		return types.RecordPage{Records: ToRecords(env.Content), PageMeta: env.PageMeta}
	}
	var flat []Record
	if err := json.Unmarshal(body, &flat); err == nil && flat != nil {
		return types.RecordPage{
			Records:  ToRecords(flat),
			PageMeta: types.PageMeta{TotalElements: len(flat), TotalPages: 1, Size: len(flat)},
		}
	}
	return types.RecordPage{Records: []types.DailyRecord{}}
}

// DecodePatientPage normalizes a list-patients response body.
func DecodePatientPage(body []byte) types.PatientPage {
	var env patientEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Content != nil {
		return types.PatientPage{Patients: env.Content, PageMeta: env.PageMeta}
	}
	var flat []types.Patient
	if err := json.Unmarshal(body, &flat); err == nil && flat != nil {
		return types.PatientPage{
			Patients: flat,
			PageMeta: types.PageMeta{TotalElements: len(flat), TotalPages: 1, Size: len(flat)},
		}
	}
	return types.PatientPage{Patients: []types.Patient{}}
}
