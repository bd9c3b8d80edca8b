package history

import (
	"context"
	"errors"
	"testing"

	mindly "github.com/mindly/mindly-client"
)

type stubService struct {
	records   []mindly.DailyRecord
	patient   mindly.Patient
	listErr   error
	getErr    error
	deleteErr error

	listCalls   int
	deleteCalls int
	deletedID   int64
}

func (s *stubService) ListRecords(_ context.Context, email string) ([]mindly.DailyRecord, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func (s *stubService) GetPatientByEmail(_ context.Context, email string) (*mindly.Patient, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	p := s.patient
	return &p, nil
}

func (s *stubService) DeleteRecord(_ context.Context, id int64) error {
	s.deleteCalls++
	s.deletedID = id
	return s.deleteErr
}

func threeRecords() []mindly.DailyRecord {
	return []mindly.DailyRecord{
		{ID: 3, Date: "2025-09-30"},
		{ID: 2, Date: "2025-09-29"},
		{ID: 1, Date: "2025-09-28"},
	}
}

func TestLoadJoinsRecordsAndFeedback(t *testing.T) {
	svc := &stubService{
		records: threeRecords(),
		patient: mindly.Patient{Email: "ana@x.com", Observation: "evoluindo bem"},
	}
	v := NewView(svc, "ana@x.com")
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(v.Records()) != 3 {
		t.Fatalf("records = %d", len(v.Records()))
	}
	// Server order is kept as-is.
	if v.Records()[0].ID != 3 {
		t.Fatalf("order changed: %+v", v.Records())
	}
	if v.Feedback() != "evoluindo bem" {
		t.Fatalf("feedback = %q", v.Feedback())
	}
	if v.Empty() {
		t.Fatal("view with records must not be empty")
	}
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	svc := &stubService{records: threeRecords(), patient: mindly.Patient{Observation: "ok"}}
	v := NewView(svc, "ana@x.com")
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	svc.listErr = errors.New("timeout")
	if err := v.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(v.Records()) != 3 || v.Feedback() != "ok" {
		t.Fatal("failed load must not clobber the rendered state")
	}
}

func TestEmptyState(t *testing.T) {
	svc := &stubService{records: []mindly.DailyRecord{}}
	v := NewView(svc, "ana@x.com")

	if v.Empty() {
		t.Fatal("unloaded view is not yet empty")
	}
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !v.Empty() {
		t.Fatal("loaded view without records must be empty")
	}
}

func TestDeleteRemovesExactlyOneAfterConfirmation(t *testing.T) {
	svc := &stubService{records: threeRecords()}
	v := NewView(svc, "ana@x.com")
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := v.Delete(context.Background(), 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if svc.deleteCalls != 1 || svc.deletedID != 2 {
		t.Fatalf("service call wrong: calls=%d id=%d", svc.deleteCalls, svc.deletedID)
	}
	if len(v.Records()) != 2 {
		t.Fatalf("exactly one row must go, have %d", len(v.Records()))
	}
	for _, r := range v.Records() {
		if r.ID == 2 {
			t.Fatal("deleted id still present")
		}
	}
}

func TestDeleteFailureLeavesListUnchanged(t *testing.T) {
	svc := &stubService{records: threeRecords(), deleteErr: errors.New("500")}
	v := NewView(svc, "ana@x.com")
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := v.Delete(context.Background(), 2); err == nil {
		t.Fatal("expected error")
	}
	if len(v.Records()) != 3 {
		t.Fatalf("list must be unchanged on failure, have %d", len(v.Records()))
	}
}

func TestLoadIfChangedHonoursReloadKey(t *testing.T) {
	svc := &stubService{records: threeRecords()}
	v := NewView(svc, "ana@x.com")

	if err := v.LoadIfChanged(context.Background(), 0); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := v.LoadIfChanged(context.Background(), 0); err != nil {
		t.Fatalf("same key: %v", err)
	}
	if svc.listCalls != 1 {
		t.Fatalf("unchanged key must not refetch, calls=%d", svc.listCalls)
	}

	if err := v.LoadIfChanged(context.Background(), 1); err != nil {
		t.Fatalf("new key: %v", err)
	}
	if svc.listCalls != 2 {
		t.Fatalf("changed key must refetch, calls=%d", svc.listCalls)
	}
}
