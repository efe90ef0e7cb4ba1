package usecase_test

import (
	"strings"

	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// Fakes en memoria para los casos de uso CRUD. Siguen el contrato del
// adaptador PostgreSQL: (nil, nil) para no-encontrado en lecturas.

// ── ItemRepository ────────────────────────────────────────────────────────────

type memItemRepo struct {
	items  map[int64]*entity.Item
	nextID int64
}

var _ repository.ItemRepository = (*memItemRepo)(nil)

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[int64]*entity.Item{}}
}

func (r *memItemRepo) Create(item *entity.Item) error {
	for _, it := range r.items {
		if it.ItemCode == item.ItemCode {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(id int64) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) GetByCode(itemCode string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.ItemCode == itemCode {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) GetForUpdate(id int64) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *memItemRepo) AdjustStock(id int64, delta int64) (int64, error) {
	it, ok := r.items[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if it.CurrentStock+delta < 0 {
		return 0, domain.ErrInvalidInput
	}
	it.CurrentStock += delta
	return it.CurrentStock, nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) Delete(id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.items {
		if filter.Search != "" &&
			!strings.Contains(it.Name, filter.Search) &&
			!strings.Contains(it.ItemCode, filter.Search) {
			continue
		}
		if filter.CategoryID != nil && (it.CategoryID == nil || *it.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.LowStock && !it.IsLowStock() {
			continue
		}
		cp := *it
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memItemRepo) Count(filter repository.ItemFilter) (int, error) {
	list, _ := r.List(filter, 0, 0)
	return len(list), nil
}

func (r *memItemRepo) ListLowStock() ([]*entity.Item, error) {
	return r.List(repository.ItemFilter{LowStock: true}, 0, 0)
}

func (r *memItemRepo) CountBySupplier(supplierID int64) (int, error) {
	count := 0
	for _, it := range r.items {
		if it.SupplierID != nil && *it.SupplierID == supplierID {
			count++
		}
	}
	return count, nil
}

// ── SupplierRepository ────────────────────────────────────────────────────────

type memSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
	nextID    int64
}

var _ repository.SupplierRepository = (*memSupplierRepo)(nil)

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{suppliers: map[int64]*entity.Supplier{}}
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *memSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.suppliers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *memSupplierRepo) Delete(id int64) error {
	if _, ok := r.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.suppliers, id)
	return nil
}

func (r *memSupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for _, s := range r.suppliers {
		if search != "" && !strings.Contains(s.Name, search) {
			continue
		}
		cp := *s
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memSupplierRepo) Count(search string) (int, error) {
	list, _ := r.List(search, 0, 0)
	return len(list), nil
}

// ── ProjectRepository ─────────────────────────────────────────────────────────

type memProjectRepo struct {
	projects map[int64]*entity.Project
	nextID   int64
}

var _ repository.ProjectRepository = (*memProjectRepo)(nil)

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: map[int64]*entity.Project{}}
}

func (r *memProjectRepo) Create(p *entity.Project) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) GetByID(id int64) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) Update(p *entity.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Delete(id int64) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *memProjectRepo) List(filter repository.ProjectFilter, limit, offset int) ([]*entity.Project, error) {
	var list []*entity.Project
	for _, p := range r.projects {
		if filter.Search != "" && !strings.Contains(p.Name, filter.Search) {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memProjectRepo) Count(filter repository.ProjectFilter) (int, error) {
	list, _ := r.List(filter, 0, 0)
	return len(list), nil
}

// ── AllocationRepository ──────────────────────────────────────────────────────

type memAllocRepo struct {
	allocs []*entity.ProjectAllocation
	nextID int64
}

var _ repository.AllocationRepository = (*memAllocRepo)(nil)

func (r *memAllocRepo) Create(a *entity.ProjectAllocation) error {
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.allocs = append(r.allocs, &cp)
	return nil
}

func (r *memAllocRepo) ListByProject(projectID int64) ([]*entity.ProjectAllocation, error) {
	var list []*entity.ProjectAllocation
	for _, a := range r.allocs {
		if a.ProjectID == projectID {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memAllocRepo) CountByProject(projectID int64) (int, error) {
	list, _ := r.ListByProject(projectID)
	return len(list), nil
}
