package panel_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nourhanadel/pharma-admin-BE/internal/panel"
)

type row struct {
	ID   int64
	Name string
}

type fakeBackend struct {
	rows []row

	fetchErr  error
	updateErr error
	deleteErr error

	updated []row
	deleted []int64
}

func (f *fakeBackend) fetch(_ context.Context) ([]row, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]row, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeBackend) update(_ context.Context, r row) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, r)
	for i := range f.rows {
		if f.rows[i].ID == r.ID {
			f.rows[i] = r
		}
	}
	return nil
}

func (f *fakeBackend) delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newPanel(backend *fakeBackend, pageSize int) *panel.Panel[row] {
	return panel.New(panel.Config[row]{
		Fetch:    backend.fetch,
		Update:   backend.update,
		Delete:   backend.delete,
		ID:       func(r row) int64 { return r.ID },
		Match:    func(r row, term string) bool { return strings.Contains(strings.ToLower(r.Name), strings.ToLower(term)) },
		PageSize: pageSize,
	})
}

func rows(names ...string) []row {
	out := make([]row, len(names))
	for i, name := range names {
		out[i] = row{ID: int64(i + 1), Name: name}
	}
	return out
}

func mustLoad(t *testing.T, p *panel.Panel[row]) {
	t.Helper()
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
}

func TestLoadFailureKeepsPreviousRows(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol", "Augmentin")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	backend.fetchErr = errors.New("gateway down")
	if err := p.Load(context.Background()); err == nil {
		t.Fatal("Load() should report the fetch failure")
	}

	visible, total := p.Visible()
	if total != 2 || len(visible) != 2 {
		t.Fatalf("total = %d, visible = %d, want both 2", total, len(visible))
	}
}

func TestSearchFiltersRows(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol", "Augmentin", "Panadol Extra")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	p.SetSearch("panadol")
	visible, total := p.Visible()
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	for _, r := range visible {
		if !strings.Contains(strings.ToLower(r.Name), "panadol") {
			t.Fatalf("unexpected row %q", r.Name)
		}
	}

	p.SetSearch("")
	if _, total := p.Visible(); total != 3 {
		t.Fatalf("cleared search total = %d, want 3", total)
	}
}

func TestViewMoreAndLessAdjustWindow(t *testing.T) {
	names := make([]string, 25)
	for i := range names {
		names[i] = "Medicine"
	}
	backend := &fakeBackend{rows: rows(names...)}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if visible, _ := p.Visible(); len(visible) != 10 {
		t.Fatalf("visible = %d, want first page of 10", len(visible))
	}

	p.ViewMore()
	if visible, _ := p.Visible(); len(visible) != 20 {
		t.Fatalf("visible = %d, want 20 after view-more", len(visible))
	}

	p.ViewMore()
	if visible, _ := p.Visible(); len(visible) != 25 {
		t.Fatalf("visible = %d, want all 25", len(visible))
	}

	p.ViewLess()
	if visible, _ := p.Visible(); len(visible) != 10 {
		t.Fatalf("visible = %d, want first page after view-less", len(visible))
	}
}

func TestSaveEditRefusesCleanSession(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() returned error: %v", err)
	}

	if err := p.SaveEdit(context.Background()); !errors.Is(err, panel.ErrNotModified) {
		t.Fatalf("err = %v, want ErrNotModified", err)
	}
	if len(backend.updated) != 0 {
		t.Fatal("clean session must not issue a request")
	}
}

func TestEditDirtySelfCorrects(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() returned error: %v", err)
	}

	if err := p.SetDraft(row{ID: 1, Name: "Panadol Extra"}); err != nil {
		t.Fatalf("SetDraft() returned error: %v", err)
	}
	if !p.Dirty() {
		t.Fatal("changed draft must mark the session dirty")
	}

	if err := p.SetDraft(row{ID: 1, Name: "Panadol"}); err != nil {
		t.Fatalf("SetDraft() returned error: %v", err)
	}
	if p.Dirty() {
		t.Fatal("reverted draft must not be dirty")
	}
}

func TestSaveEditPersistsAndClosesSession(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() returned error: %v", err)
	}
	if err := p.SetDraft(row{ID: 1, Name: "Panadol Extra"}); err != nil {
		t.Fatalf("SetDraft() returned error: %v", err)
	}

	if err := p.SaveEdit(context.Background()); err != nil {
		t.Fatalf("SaveEdit() returned error: %v", err)
	}

	if len(backend.updated) != 1 || backend.updated[0].Name != "Panadol Extra" {
		t.Fatalf("updated = %+v, want the edited row", backend.updated)
	}
	if err := p.SetDraft(row{ID: 1, Name: "x"}); !errors.Is(err, panel.ErrNoEditSession) {
		t.Fatalf("err = %v, want ErrNoEditSession after a successful save", err)
	}

	mustLoad(t, p)
	visible, _ := p.Visible()
	if visible[0].Name != "Panadol Extra" {
		t.Fatal("reload must pick up the persisted row")
	}
}

func TestSaveEditNotFailedByBrokenReload(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() returned error: %v", err)
	}
	if err := p.SetDraft(row{ID: 1, Name: "Panadol Extra"}); err != nil {
		t.Fatalf("SetDraft() returned error: %v", err)
	}

	backend.fetchErr = errors.New("gateway down")
	if err := p.SaveEdit(context.Background()); err != nil {
		t.Fatalf("SaveEdit() returned error %v; the write landed and must report success", err)
	}
	if len(backend.updated) != 1 {
		t.Fatalf("update calls = %d, want 1", len(backend.updated))
	}
}

func TestSaveEditFailureKeepsSession(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() returned error: %v", err)
	}
	if err := p.SetDraft(row{ID: 1, Name: "Panadol Extra"}); err != nil {
		t.Fatalf("SetDraft() returned error: %v", err)
	}

	backend.updateErr = errors.New("gateway down")
	if err := p.SaveEdit(context.Background()); err == nil {
		t.Fatal("SaveEdit() should report the gateway failure")
	}

	if !p.Dirty() {
		t.Fatal("failed save must keep the edit session and its draft")
	}
	visible, _ := p.Visible()
	if visible[0].Name != "Panadol" {
		t.Fatal("failed save must leave the listed row untouched")
	}
}

func TestBeginEditUnknownRow(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.BeginEdit(42); !errors.Is(err, panel.ErrRowNotFound) {
		t.Fatalf("err = %v, want ErrRowNotFound", err)
	}
}

func TestConfirmDeleteRemovesRow(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol", "Augmentin")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.RequestDelete(2); err != nil {
		t.Fatalf("RequestDelete() returned error: %v", err)
	}
	if err := p.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete() returned error: %v", err)
	}

	if len(backend.deleted) != 1 || backend.deleted[0] != 2 {
		t.Fatalf("deleted = %v, want [2]", backend.deleted)
	}
	if _, total := p.Visible(); total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
}

func TestConfirmDeleteFailureKeepsRowListed(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.RequestDelete(1); err != nil {
		t.Fatalf("RequestDelete() returned error: %v", err)
	}

	backend.deleteErr = errors.New("gateway down")
	if err := p.ConfirmDelete(context.Background()); err == nil {
		t.Fatal("ConfirmDelete() should report the gateway failure")
	}

	if _, total := p.Visible(); total != 1 {
		t.Fatal("failed delete must leave the row listed")
	}
}

func TestConfirmDeleteWithoutRequest(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.ConfirmDelete(context.Background()); !errors.Is(err, panel.ErrNoPendingDelete) {
		t.Fatalf("err = %v, want ErrNoPendingDelete", err)
	}
}

func TestCancelDeleteDismissesPending(t *testing.T) {
	backend := &fakeBackend{rows: rows("Panadol")}
	p := newPanel(backend, 10)
	mustLoad(t, p)

	if err := p.RequestDelete(1); err != nil {
		t.Fatalf("RequestDelete() returned error: %v", err)
	}
	p.CancelDelete()

	if err := p.ConfirmDelete(context.Background()); !errors.Is(err, panel.ErrNoPendingDelete) {
		t.Fatalf("err = %v, want ErrNoPendingDelete after cancel", err)
	}
	if len(backend.deleted) != 0 {
		t.Fatal("cancelled delete must not reach the gateway")
	}
}
