// Package history implements the patient history view-model: the record list
// in server order, the latest clinician feedback, and the confirm-then-delete
// flow. Rendering and the confirmation prompt belong to the caller.
package history

import (
	"context"

	"golang.org/x/sync/errgroup"

	mindly "github.com/mindly/mindly-client"
)

// Service is the slice of the SDK the history view needs. *mindly.Client
// satisfies it.
type Service interface {
	ListRecords(ctx context.Context, email string) ([]mindly.DailyRecord, error)
	GetPatientByEmail(ctx context.Context, email string) (*mindly.Patient, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// View holds the loaded state for one patient's history.
type View struct {
	svc   Service
	email string

	records   []mindly.DailyRecord
	feedback  string
	loaded    bool
	reloadKey int
}

// NewView creates a view for the given session email.
func NewView(svc Service, email string) *View {
	return &View{svc: svc, email: email}
}

// Load fetches the record list and the patient's current clinician
// observation concurrently and joins both before exposing either. On error
// the previously rendered state is left unchanged.
func (v *View) Load(ctx context.Context) error {
	var (
		records []mindly.DailyRecord
		patient *mindly.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = v.svc.ListRecords(gctx, v.email)
		return err
	})
	g.Go(func() error {
		var err error
		patient, err = v.svc.GetPatientByEmail(gctx, v.email)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	v.records = records
	v.feedback = patient.Observation
	v.loaded = true
	return nil
}

// LoadIfChanged reloads when the navigation reload key differs from the one
// last seen, or on first use.
func (v *View) LoadIfChanged(ctx context.Context, key int) error {
	if v.loaded && key == v.reloadKey {
		return nil
	}
	if err := v.Load(ctx); err != nil {
		return err
	}
	v.reloadKey = key
	return nil
}

// Records returns the list as ordered by the server (newest first).
func (v *View) Records() []mindly.DailyRecord { return v.records }

// Feedback returns the latest clinician observation, "" when none.
func (v *View) Feedback() string { return v.feedback }

// Empty reports whether a loaded view has no records, which is when the
// screen offers the direct path to the form.
func (v *View) Empty() bool { return v.loaded && len(v.records) == 0 }

// Delete removes the record with the given id, server first. The row leaves
// the local list only after the backend confirms; on failure the list is
// unchanged and the error is surfaced for display.
func (v *View) Delete(ctx context.Context, id int64) error {
	if err := v.svc.DeleteRecord(ctx, id); err != nil {
		return err
	}
	kept := make([]mindly.DailyRecord, 0, len(v.records))
	for _, r := range v.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	v.records = kept
	return nil
}
