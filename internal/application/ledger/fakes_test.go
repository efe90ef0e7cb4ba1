package ledger_test

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// dayOf trunca un instante a su día calendario.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el núcleo del ledger. Emulan el comportamiento del
// adaptador PostgreSQL: (nil, nil) para no-encontrado, AdjustStock protege el
// invariante de stock no negativo, y el runner restaura el estado previo si
// el callback falla (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	items  map[int64]*entity.Item
	txs    []*entity.Transaction
	allocs []*entity.ProjectAllocation

	nextTxID    int64
	nextAllocID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[int64]*entity.Item{}}
}

func (s *fakeStore) addItem(i *entity.Item) {
	cp := *i
	s.items[i.ID] = &cp
}

func (s *fakeStore) snapshot() *fakeStore {
	snap := &fakeStore{
		items:       make(map[int64]*entity.Item, len(s.items)),
		txs:         append([]*entity.Transaction(nil), s.txs...),
		allocs:      append([]*entity.ProjectAllocation(nil), s.allocs...),
		nextTxID:    s.nextTxID,
		nextAllocID: s.nextAllocID,
	}
	for id, it := range s.items {
		cp := *it
		snap.items[id] = &cp
	}
	return snap
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.items = snap.items
	s.txs = snap.txs
	s.allocs = snap.allocs
	s.nextTxID = snap.nextTxID
	s.nextAllocID = snap.nextAllocID
}

// ── ItemRepository ────────────────────────────────────────────────────────────

type fakeItemRepo struct{ s *fakeStore }

var _ repository.ItemRepository = (*fakeItemRepo)(nil)

func (r *fakeItemRepo) Create(item *entity.Item) error {
	r.s.addItem(item)
	return nil
}

func (r *fakeItemRepo) GetByID(id int64) (*entity.Item, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetByCode(itemCode string) (*entity.Item, error) {
	for _, it := range r.s.items {
		if it.ItemCode == itemCode {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(id int64) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) AdjustStock(id int64, delta int64) (int64, error) {
	it, ok := r.s.items[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if it.CurrentStock+delta < 0 {
		return 0, domain.ErrInvalidInput
	}
	it.CurrentStock += delta
	return it.CurrentStock, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.s.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.addItem(item)
	return nil
}

func (r *fakeItemRepo) Delete(id int64) error {
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

func (r *fakeItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.s.items {
		if filter.Search != "" && !strings.Contains(it.Name, filter.Search) {
			continue
		}
		cp := *it
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeItemRepo) Count(filter repository.ItemFilter) (int, error) {
	list, _ := r.List(filter, 0, 0)
	return len(list), nil
}

func (r *fakeItemRepo) ListLowStock() ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.s.items {
		if it.IsLowStock() {
			cp := *it
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeItemRepo) CountBySupplier(supplierID int64) (int, error) {
	count := 0
	for _, it := range r.s.items {
		if it.SupplierID != nil && *it.SupplierID == supplierID {
			count++
		}
	}
	return count, nil
}

// ── TransactionRepository ─────────────────────────────────────────────────────

type fakeTxRepo struct{ s *fakeStore }

var _ repository.TransactionRepository = (*fakeTxRepo)(nil)

func (r *fakeTxRepo) Create(tx *entity.Transaction) error {
	r.s.nextTxID++
	tx.ID = r.s.nextTxID
	cp := *tx
	r.s.txs = append(r.s.txs, &cp)
	return nil
}

func (r *fakeTxRepo) GetByID(id int64) (*entity.Transaction, error) {
	for _, tx := range r.s.txs {
		if tx.ID == id {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las transacciones del más reciente al más antiguo.
// Los filtros de fecha comparan por día calendario, igual que el adaptador
// PostgreSQL: end_date incluye el día completo.
func (r *fakeTxRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for i := len(r.s.txs) - 1; i >= 0; i-- {
		tx := r.s.txs[i]
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.InventoryID != nil && tx.InventoryID != *filter.InventoryID {
			continue
		}
		if filter.ProjectID != nil && (tx.ProjectID == nil || *tx.ProjectID != *filter.ProjectID) {
			continue
		}
		if filter.StartDate != nil && dayOf(tx.TransactionDate).Before(dayOf(*filter.StartDate)) {
			continue
		}
		if filter.EndDate != nil && dayOf(tx.TransactionDate).After(dayOf(*filter.EndDate)) {
			continue
		}
		cp := *tx
		matched = append(matched, &cp)
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeTxRepo) Count(filter repository.TransactionFilter) (int, error) {
	list, _ := r.List(filter, 0, 0)
	return len(list), nil
}

// ── AllocationRepository ──────────────────────────────────────────────────────

type fakeAllocRepo struct{ s *fakeStore }

var _ repository.AllocationRepository = (*fakeAllocRepo)(nil)

func (r *fakeAllocRepo) Create(alloc *entity.ProjectAllocation) error {
	r.s.nextAllocID++
	alloc.ID = r.s.nextAllocID
	cp := *alloc
	r.s.allocs = append(r.s.allocs, &cp)
	return nil
}

func (r *fakeAllocRepo) ListByProject(projectID int64) ([]*entity.ProjectAllocation, error) {
	var list []*entity.ProjectAllocation
	for _, a := range r.s.allocs {
		if a.ProjectID == projectID {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeAllocRepo) CountByProject(projectID int64) (int, error) {
	list, _ := r.ListByProject(projectID)
	return len(list), nil
}

// ── ProjectRepository (solo lo que usa el ledger) ─────────────────────────────

type fakeProjectRepo struct {
	projects map[int64]*entity.Project
}

var _ repository.ProjectRepository = (*fakeProjectRepo)(nil)

func (r *fakeProjectRepo) Create(p *entity.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) GetByID(id int64) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) Update(p *entity.Project) error { return nil }
func (r *fakeProjectRepo) Delete(id int64) error          { return nil }

func (r *fakeProjectRepo) List(filter repository.ProjectFilter, limit, offset int) ([]*entity.Project, error) {
	return nil, nil
}

func (r *fakeProjectRepo) Count(filter repository.ProjectFilter) (int, error) { return 0, nil }

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback sobre los mismos fakes y, si falla,
// restaura el estado previo (emula el rollback de la transacción SQL).
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	allocRepo repository.AllocationRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeItemRepo{s: r.s}, &fakeTxRepo{s: r.s}, &fakeAllocRepo{s: r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
