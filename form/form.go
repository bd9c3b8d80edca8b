// Package form implements the daily-record form: field state, the digit-mask
// date input, the three mutually exclusive selectors and the validation rules
// that gate submission. It is UI-agnostic; a screen or CLI drives it and
// renders whatever it exposes.
package form

import (
	"context"
	"strconv"
	"strings"

	mindly "github.com/mindly/mindly-client"
	"github.com/mindly/mindly-client/internal/wire"
)

// Mode distinguishes creating a new record from editing an existing one.
type Mode int

const (
	Create Mode = iota
	Edit
)

// Selector identifies one of the three single-select dropdowns. At most one
// is open at a time.
type Selector int

const (
	SelectorNone Selector = iota
	SelectorMood
	SelectorStress
	SelectorSleep
)

// RecordService is the slice of the SDK the form needs. *mindly.Client
// satisfies it.
type RecordService interface {
	CreateRecord(ctx context.Context, req mindly.CreateRecordRequest) (*mindly.DailyRecord, error)
	UpdateRecord(ctx context.Context, id int64, patch mindly.RecordPatch) (*mindly.DailyRecord, error)
}

// ValidationError blocks submission and carries the message shown to the
// user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Form holds the screen state for one record being created or edited.
type Form struct {
	mode     Mode
	recordID int64
	email    string // active session's patient email

	Date             string // dd/mm/yyyy display form, masked as typed
	Description      string
	Mood             string
	StressInput      string // raw dropdown value; coerced at submission
	SleepInput       string
	PhysicalActivity bool
	Gratitude        string

	open       Selector
	submitting bool
}

// New starts an empty form in Create mode for the given session email.
func New(email string) *Form {
	return &Form{mode: Create, email: email}
}

// NewEdit starts a form in Edit mode, pre-populating every field from the
// existing record, including converting its ISO date to display form.
func NewEdit(email string, rec mindly.DailyRecord) *Form {
	f := &Form{
		mode:             Edit,
		recordID:         rec.ID,
		email:            email,
		Date:             wire.ToDisplayDate(rec.Date),
		Description:      rec.Description,
		Mood:             rec.Mood,
		PhysicalActivity: rec.PhysicalActivity,
		Gratitude:        rec.Gratitude,
	}
	if rec.StressLevel > 0 {
		f.StressInput = strconv.Itoa(rec.StressLevel)
	}
	if rec.SleepQuality > 0 {
		f.SleepInput = strconv.Itoa(rec.SleepQuality)
	}
	return f
}

// Mode reports whether the form creates or edits.
func (f *Form) Mode() Mode { return f.mode }

// RecordID returns the record being edited; zero in Create mode.
func (f *Form) RecordID() int64 { return f.recordID }

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool { return f.submitting }

// MaskDate applies the date mask to raw keyboard input: non-digits are
// stripped, slashes inserted after day and month, output capped at 10
// characters. Typing "30092025" yields "30/09/2025".
func MaskDate(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 8 {
		d = d[:8]
	}
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// TypeDate feeds raw keyboard input through the date mask.
func (f *Form) TypeDate(raw string) {
	f.Date = MaskDate(raw)
}

// Toggle opens the given selector, closing whichever was open. Toggling the
// open selector closes it.
func (f *Form) Toggle(sel Selector) {
	if f.open == sel {
		f.open = SelectorNone
		return
	}
	f.open = sel
}

// Open returns the currently open selector, SelectorNone when all closed.
func (f *Form) Open() Selector { return f.open }

// ChooseMood selects a mood option and closes the selector.
func (f *Form) ChooseMood(mood string) {
	f.Mood = mood
	f.open = SelectorNone
}

// ChooseStress selects a stress level and closes the selector.
func (f *Form) ChooseStress(level string) {
	f.StressInput = level
	f.open = SelectorNone
}

// ChooseSleep selects a sleep quality and closes the selector.
func (f *Form) ChooseSleep(level string) {
	f.SleepInput = level
	f.open = SelectorNone
}

// Validate applies the submission gate. Rules, in order: the session email
// must be resolvable; the date must be exactly 10 characters of dd/mm/yyyy;
// description and mood must be non-empty after trimming. Day/month ranges
// are deliberately not checked, matching the date mask's contract.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.email) == "" {
		return &ValidationError{Field: "sessao", Message: "Sessão expirada. Faça login novamente."}
	}
	if len(f.Date) != 10 {
		return &ValidationError{Field: "data", Message: "Informe a data no formato dd/mm/aaaa."}
	}
	if strings.TrimSpace(f.Description) == "" || strings.TrimSpace(f.Mood) == "" {
		return &ValidationError{Field: "campos", Message: "Preencha a descrição e o mood do dia."}
	}
	return nil
}

// CoerceLevel coerces a dropdown value: unset or non-numeric becomes 0,
// never an error at submission time.
func CoerceLevel(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Submit validates and sends the record through svc: create in Create mode,
// partial update in Edit mode. On failure the form state is left untouched so
// the user can fix and re-trigger; on success the saved record is returned
// for the caller to navigate with.
func (f *Form) Submit(ctx context.Context, svc RecordService) (*mindly.DailyRecord, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	iso := wire.ToISODate(f.Date)
	desc := strings.TrimSpace(f.Description)
	mood := strings.TrimSpace(f.Mood)
	gratitude := strings.TrimSpace(f.Gratitude)
	stress := CoerceLevel(f.StressInput)
	sleep := CoerceLevel(f.SleepInput)

	if f.mode == Edit {
		activity := f.PhysicalActivity
		patch := mindly.RecordPatch{
			Date:             &iso,
			Description:      &desc,
			Mood:             &mood,
			StressLevel:      &stress,
			SleepQuality:     &sleep,
			PhysicalActivity: &activity,
			Gratitude:        &gratitude,
		}
		return svc.UpdateRecord(ctx, f.recordID, patch)
	}

	return svc.CreateRecord(ctx, mindly.CreateRecordRequest{
		PatientEmail:     f.email,
		Date:             iso,
		Description:      desc,
		Mood:             mood,
		StressLevel:      stress,
		SleepQuality:     sleep,
		PhysicalActivity: f.PhysicalActivity,
		Gratitude:        gratitude,
	})
}
