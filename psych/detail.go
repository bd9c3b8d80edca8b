package psych

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	mindly "github.com/mindly/mindly-client"
)

// DetailService is the slice of the SDK the patient detail view needs.
// *mindly.Client satisfies it.
type DetailService interface {
	ListRecords(ctx context.Context, email string) ([]mindly.DailyRecord, error)
	GetPatientByEmail(ctx context.Context, email string) (*mindly.Patient, error)
	SaveFeedback(ctx context.Context, email, feedback string) (*mindly.Patient, error)
}

// Detail shows one patient's record history plus the feedback box. Saving
// replaces the stored observation wholesale; last write wins.
type Detail struct {
	svc   DetailService
	email string

	records []mindly.DailyRecord
	latest  string // current stored observation
	Draft   string // feedback being typed
}

// NewDetail creates a detail view for the given patient email.
func NewDetail(svc DetailService, email string) *Detail {
	return &Detail{svc: svc, email: email}
}

// Load fetches the patient's records and current observation concurrently.
func (d *Detail) Load(ctx context.Context) error {
	var (
		records []mindly.DailyRecord
		patient *mindly.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = d.svc.ListRecords(gctx, d.email)
		return err
	})
	g.Go(func() error {
		var err error
		patient, err = d.svc.GetPatientByEmail(gctx, d.email)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	d.records = records
	d.latest = patient.Observation
	d.Draft = ""
	return nil
}

// Records returns the patient's records in server order.
func (d *Detail) Records() []mindly.DailyRecord { return d.records }

// Latest returns the currently stored observation, "" when none.
func (d *Detail) Latest() string { return d.latest }

// SaveFeedback sends the draft as the patient's new observation. An empty
// draft is rejected before any call. On success the local latest is replaced
// and the draft cleared; on failure both are left untouched.
func (d *Detail) SaveFeedback(ctx context.Context) error {
	text := strings.TrimSpace(d.Draft)
	if text == "" {
		return ErrEmptyFeedback
	}
	if _, err := d.svc.SaveFeedback(ctx, d.email, text); err != nil {
		return err
	}
	d.latest = text
	d.Draft = ""
	return nil
}
