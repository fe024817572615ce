package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

type stubBrandRepo struct {
	brands map[string]*domain.Brand
}

func (r *stubBrandRepo) List(_ context.Context) ([]domain.Brand, error) {
	var out []domain.Brand
	for _, b := range r.brands {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBrandRepo) FindByID(_ context.Context, id string) (*domain.Brand, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBrandRepo) Create(_ context.Context, b *domain.Brand) (*domain.Brand, error) {
	r.brands[b.ID] = b
	return b, nil
}

func (r *stubBrandRepo) Update(_ context.Context, b *domain.Brand) (*domain.Brand, error) {
	r.brands[b.ID] = b
	return b, nil
}

func (r *stubBrandRepo) Delete(_ context.Context, id string) error {
	delete(r.brands, id)
	return nil
}

type stubDealRepo struct {
	deals map[string]*domain.Deal
	next  int
}

func (r *stubDealRepo) List(_ context.Context) ([]domain.Deal, error) {
	var out []domain.Deal
	for _, d := range r.deals {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDealRepo) FindByID(_ context.Context, id string) (*domain.Deal, error) {
	d, ok := r.deals[id]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDealRepo) Create(_ context.Context, d *domain.Deal) (*domain.Deal, error) {
	r.next++
	clone := *d
	clone.ID = "deal_" + time.Now().Format("150405") + string(rune('a'+r.next))
	r.deals[clone.ID] = &clone
	return &clone, nil
}

func (r *stubDealRepo) Update(_ context.Context, d *domain.Deal) (*domain.Deal, error) {
	if _, ok := r.deals[d.ID]; !ok {
		return nil, domain.ErrDealNotFound
	}
	clone := *d
	r.deals[d.ID] = &clone
	return &clone, nil
}

func (r *stubDealRepo) Delete(_ context.Context, id string) error {
	delete(r.deals, id)
	return nil
}

func newDealFixtures() (*stubDealRepo, *stubBrandRepo) {
	return &stubDealRepo{deals: make(map[string]*domain.Deal)},
		&stubBrandRepo{brands: map[string]*domain.Brand{
			"brand_1": {ID: "brand_1", Name: "Acme", IsActive: true},
		}}
}

func TestDealService_Create_StampsActor(t *testing.T) {
	deals, brands := newDealFixtures()
	svc := NewDealService(deals, brands)

	created, err := svc.Create(context.Background(), ports.CreateDealInput{
		BrandID: "brand_1",
		Link:    "https://acme.example/deal",
		Code:    "SAVE20",
	}, "acc_admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CreatedBy != "acc_admin" {
		t.Fatalf("expected createdBy acc_admin, got %q", created.CreatedBy)
	}
	if !created.IsActive {
		t.Fatalf("new deals must start active")
	}
}

func TestDealService_Create_UnknownBrand(t *testing.T) {
	deals, brands := newDealFixtures()
	svc := NewDealService(deals, brands)

	_, err := svc.Create(context.Background(), ports.CreateDealInput{
		BrandID: "brand_missing",
		Link:    "https://acme.example/deal",
	}, "acc_admin")
	if !errors.Is(err, domain.ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}

func TestDealService_Update_BrandReassignmentChecked(t *testing.T) {
	deals, brands := newDealFixtures()
	svc := NewDealService(deals, brands)

	created, err := svc.Create(context.Background(), ports.CreateDealInput{
		BrandID: "brand_1",
		Link:    "https://acme.example/deal",
	}, "acc_admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	missing := "brand_missing"
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateDealInput{BrandID: &missing}, "acc_admin"); !errors.Is(err, domain.ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}

	hot := true
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateDealInput{IsHot: &hot}, "acc_entry")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.IsHot {
		t.Fatalf("expected deal marked hot")
	}
	if updated.UpdatedBy != "acc_entry" {
		t.Fatalf("expected updatedBy acc_entry, got %q", updated.UpdatedBy)
	}
	if updated.BrandID != "brand_1" {
		t.Fatalf("brand changed unexpectedly: %q", updated.BrandID)
	}
}

func TestDealService_Delete_Missing(t *testing.T) {
	deals, brands := newDealFixtures()
	svc := NewDealService(deals, brands)

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrDealNotFound) {
		t.Fatalf("expected ErrDealNotFound, got %v", err)
	}
}
