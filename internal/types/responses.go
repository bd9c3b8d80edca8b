package types

// ------------------------------
// Response Types
// ------------------------------

// PageMeta mirrors the Spring-style pagination envelope returned by the
// backend's list endpoints. The envelope is the canonical contract; a bare
// array is a legacy shape normalized at the wire boundary.
type PageMeta struct {
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

// RecordPage is a page of daily records plus envelope metadata.
type RecordPage struct {
	Records []DailyRecord
	PageMeta
}

// PatientPage is a page of patients plus envelope metadata.
type PatientPage struct {
	Patients []Patient
	PageMeta
}
