// Package psych implements the psychologist-facing view-models: the patient
// roster with alert badges, and the single-patient detail with the clinical
// feedback box.
package psych

import (
	"context"

	"golang.org/x/sync/errgroup"

	mindly "github.com/mindly/mindly-client"
)

// RosterService is the slice of the SDK the roster needs. *mindly.Client
// satisfies it.
type RosterService interface {
	ListPatients(ctx context.Context) ([]mindly.Patient, error)
	ListAlerts(ctx context.Context) ([]mindly.AlertSignal, error)
}

// Row is one roster entry: the patient annotated with whether any current
// alert signal references them.
type Row struct {
	mindly.Patient
	HasAlert bool
}

// Roster lists all patients with their alert badge.
type Roster struct {
	svc  RosterService
	rows []Row
}

// NewRoster creates an empty roster.
func NewRoster(svc RosterService) *Roster {
	return &Roster{svc: svc}
}

// Load fetches the patient list and the alert signals concurrently, joins
// both, and annotates each row via an id lookup. Annotation is independent of
// the ordering of either response.
func (r *Roster) Load(ctx context.Context) error {
	var (
		patients []mindly.Patient
		alerts   []mindly.AlertSignal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		patients, err = r.svc.ListPatients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = r.svc.ListAlerts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	flagged := make(map[int64]struct{}, len(alerts))
	for _, a := range alerts {
		flagged[a.PatientID] = struct{}{}
	}

	rows := make([]Row, 0, len(patients))
	for _, p := range patients {
		_, hasAlert := flagged[p.ID]
		rows = append(rows, Row{Patient: p, HasAlert: hasAlert})
	}
	r.rows = rows
	return nil
}

// Rows returns the annotated roster in server order.
func (r *Roster) Rows() []Row { return r.rows }
