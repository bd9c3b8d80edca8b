package wire

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mindly/mindly-client/internal/types"
)

func strPtr(s string) *string { return &s }

func TestDecodeActivity(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want bool
	}{
		{"nil is false", nil, false},
		{"SIM", strPtr("SIM"), true},
		{"sim lowercase", strPtr("sim"), true},
		{"mixed case", strPtr("SiM"), true},
		{"true", strPtr("true"), true},
		{"TRUE", strPtr("TRUE"), true},
		{"one", strPtr("1"), true},
		{"padded sim", strPtr("  sim "), true},
		{"NAO", strPtr("NAO"), false},
		{"nao", strPtr("nao"), false},
		{"empty string", strPtr(""), false},
		{"garbage", strPtr("talvez"), false},
		{"zero", strPtr("0"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeActivity(tt.in); got != tt.want {
				t.Fatalf("DecodeActivity(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestActivityRoundTrip(t *testing.T) {
	for _, b := range []bool{true, false} {
		enc := EncodeActivity(b)
		if got := DecodeActivity(&enc); got != b {
			t.Fatalf("decode(encode(%v)) = %v", b, got)
		}
	}
}

func TestDecodeActivityMissingField(t *testing.T) {
	var w Record
	if err := json.Unmarshal([]byte(`{"id":1,"dataRegistro":"2025-09-30"}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if DecodeActivity(w.PhysicalActivity) {
		t.Fatal("absent activity field must decode to false")
	}
}

func TestToRecord(t *testing.T) {
	w := Record{
		ID:               7,
		Date:             "2025-09-30",
		Description:      "dia corrido",
		Mood:             "😰 Ansioso(a)",
		StressLevel:      4,
		SleepQuality:     2,
		PhysicalActivity: strPtr("SIM"),
		Gratitude:        strPtr("família"),
		ClinicianNote:    strPtr("acompanhar"),
	}
	r := ToRecord(w)
	if r.ID != 7 || r.Date != "2025-09-30" || !r.PhysicalActivity {
		t.Fatalf("unexpected mapping: %+v", r)
	}
	if r.Gratitude != "família" || r.ClinicianNote != "acompanhar" {
		t.Fatalf("optional fields lost: %+v", r)
	}

	// Optional pointers absent -> zero values, never a failure.
	r2 := ToRecord(Record{ID: 8})
	if r2.Gratitude != "" || r2.ClinicianNote != "" || r2.PhysicalActivity {
		t.Fatalf("absent optionals should be zero: %+v", r2)
	}
}

func TestFromCreateRequestGratitudeNull(t *testing.T) {
	p := FromCreateRequest(types.CreateRecordRequest{
		PatientEmail: "a@b.com",
		Date:         "2025-09-30",
		Description:  "ok",
		Mood:         "😐 Neutro",
		Gratitude:    "   ",
	})
	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"motivoGratidao":null`) {
		t.Fatalf("blank gratitude must serialize as null, got %s", body)
	}
	if !strings.Contains(string(body), `"atividadeFisica":"NAO"`) {
		t.Fatalf("activity must be wire-encoded, got %s", body)
	}
}

func TestFromPatchOnlySuppliedFields(t *testing.T) {
	desc := "novo texto"
	p := FromPatch(types.RecordPatch{Description: &desc})
	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"descricaoDia":"novo texto"}` {
		t.Fatalf("patch must carry only supplied fields, got %s", body)
	}
}

func TestFromPatchGratitude(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"cleared note becomes null", strPtr("   "), `{"motivoGratidao":null}`},
		{"empty note becomes null", strPtr(""), `{"motivoGratidao":null}`},
		{"note is trimmed", strPtr("  família  "), `{"motivoGratidao":"família"}`},
		{"absent note is omitted", nil, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(FromPatch(types.RecordPatch{Gratitude: tt.in}))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(body) != tt.want {
				t.Fatalf("patch body = %s, want %s", body, tt.want)
			}
		})
	}
}

func TestFromPatchActivityEncodedOnlyIfPresent(t *testing.T) {
	active := true
	p := FromPatch(types.RecordPatch{PhysicalActivity: &active})
	if p.PhysicalActivity == nil || *p.PhysicalActivity != ActivityYes {
		t.Fatalf("activity not re-encoded: %+v", p)
	}

	p2 := FromPatch(types.RecordPatch{})
	if p2.PhysicalActivity != nil {
		t.Fatal("activity must stay absent when not patched")
	}
}
