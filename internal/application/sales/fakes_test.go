package sales_test

import (
	"context"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner simula la semántica transaccional:
// toma un snapshot de los stores antes de fn y lo restaura si fn falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.byID[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := r.byID[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) stock(id string) int {
	return r.byID[id].Stock
}

func (r *fakeProductRepo) snapshot() map[string]*entity.Product {
	s := make(map[string]*entity.Product, len(r.byID))
	for id, p := range r.byID {
		cp := *p
		s[id] = &cp
	}
	return s
}

type fakeSaleRepo struct {
	byID map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{byID: make(map[string]*entity.Sale)}
}

func copySale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	return &cp
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.byID[s.ID] = copySale(s)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return copySale(s), nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, copySale(s))
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	r.byID[s.ID] = copySale(s)
	return nil
}

func (r *fakeSaleRepo) MarkPaid(id, method string) (bool, error) {
	s, ok := r.byID[id]
	if !ok || s.PaymentStatus == entity.PaymentStatusPaid {
		return false, nil
	}
	s.PaymentStatus = entity.PaymentStatusPaid
	s.PaymentMethod = method
	return true, nil
}

func (r *fakeSaleRepo) Retract(id string) (bool, error) {
	s, ok := r.byID[id]
	if !ok || s.Status == entity.SaleStatusRetracted {
		return false, nil
	}
	s.Status = entity.SaleStatusRetracted
	return true, nil
}

func (r *fakeSaleRepo) snapshot() map[string]*entity.Sale {
	s := make(map[string]*entity.Sale, len(r.byID))
	for id, sale := range r.byID {
		s[id] = copySale(sale)
	}
	return s
}

type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (tx *fakeTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	productsBefore := tx.products.snapshot()
	salesBefore := tx.sales.snapshot()
	if err := fn(tx.products, tx.sales); err != nil {
		// rollback
		tx.products.byID = productsBefore
		tx.sales.byID = salesBefore
		return err
	}
	return nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
	for _, c := range customers {
		cp := *c
		r.byID[c.ID] = &cp
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error                   { return nil }
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Delete(id string) error { return nil }

type fakeTherapistRepo struct {
	byID map[string]*entity.Therapist
}

func newFakeTherapistRepo(therapists ...*entity.Therapist) *fakeTherapistRepo {
	r := &fakeTherapistRepo{byID: make(map[string]*entity.Therapist)}
	for _, t := range therapists {
		cp := *t
		r.byID[t.ID] = &cp
	}
	return r
}

func (r *fakeTherapistRepo) Create(t *entity.Therapist) error { return nil }
func (r *fakeTherapistRepo) GetByID(id string) (*entity.Therapist, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
func (r *fakeTherapistRepo) List() ([]*entity.Therapist, error)       { return nil, nil }
func (r *fakeTherapistRepo) ListActive() ([]*entity.Therapist, error) { return nil, nil }
func (r *fakeTherapistRepo) Update(t *entity.Therapist) error         { return nil }
func (r *fakeTherapistRepo) Delete(id string) error                   { return nil }

type fakeVoucherRepo struct {
	byCode map[string]*entity.Voucher
}

func newFakeVoucherRepo(vouchers ...*entity.Voucher) *fakeVoucherRepo {
	r := &fakeVoucherRepo{byCode: make(map[string]*entity.Voucher)}
	for _, v := range vouchers {
		cp := *v
		r.byCode[v.Code] = &cp
	}
	return r
}

func (r *fakeVoucherRepo) Create(v *entity.Voucher) error { return nil }
func (r *fakeVoucherRepo) GetByID(id string) (*entity.Voucher, error) {
	return nil, nil
}
func (r *fakeVoucherRepo) GetByCode(code string) (*entity.Voucher, error) {
	v, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}
func (r *fakeVoucherRepo) List() ([]*entity.Voucher, error)       { return nil, nil }
func (r *fakeVoucherRepo) ListActive() ([]*entity.Voucher, error) { return nil, nil }
func (r *fakeVoucherRepo) Update(v *entity.Voucher) error         { return nil }
func (r *fakeVoucherRepo) Delete(id string) error                 { return nil }

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (r *fakeSettingsRepo) Get() (*entity.Settings, error) { return r.settings, nil }
func (r *fakeSettingsRepo) Upsert(s *entity.Settings) error {
	r.settings = s
	return nil
}

type fakeReceiptGenerator struct{}

func (g *fakeReceiptGenerator) Generate(sale *entity.Sale, settings *entity.Settings) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}
