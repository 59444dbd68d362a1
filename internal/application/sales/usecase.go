package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/application/inventory"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/pricing"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
	"github.com/jmontoya/spapos-api/pkg/logger"
	"github.com/jmontoya/spapos-api/pkg/metrics"
	"github.com/jmontoya/spapos-api/pkg/validate"
)

// UseCase orquesta el ciclo de vida de la venta: creación, edición de ventas
// no pagadas, cobro y retractación. Toda mutación de stock pasa por las
// primitivas del paquete inventory dentro de una transacción.
type UseCase struct {
	txRunner      TxRunner
	saleRepo      repository.SaleRepository
	customerRepo  repository.CustomerRepository
	therapistRepo repository.TherapistRepository
	voucherRepo   repository.VoucherRepository
	settingsRepo  repository.SettingsRepository
	receipts      ReceiptGenerator
	log           *logger.Logger
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	therapistRepo repository.TherapistRepository,
	voucherRepo repository.VoucherRepository,
	settingsRepo repository.SettingsRepository,
	receipts ReceiptGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		saleRepo:      saleRepo,
		customerRepo:  customerRepo,
		therapistRepo: therapistRepo,
		voucherRepo:   voucherRepo,
		settingsRepo:  settingsRepo,
		receipts:      receipts,
		log:           log,
	}
}

// CreateSale crea una venta y descuenta el stock de cada línea en una sola
// transacción. El descuento ocurre también para ventas Unpaid: el stock queda
// reservado desde la creación. Los precios se toman del catálogo en el
// servidor, nunca del cliente.
func (uc *UseCase) CreateSale(ctx context.Context, cashierID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	paymentMethod := in.PaymentMethod
	if in.PaymentStatus == entity.PaymentStatusUnpaid {
		// El método real se fija al cobrar.
		paymentMethod = entity.PaymentMethodPending
	} else if paymentMethod == "" {
		return nil, fmt.Errorf("%w: una venta pagada requiere método de pago", domain.ErrInvalidInput)
	}

	customer, therapist, voucher, err := uc.resolveRefs(in.CustomerID, in.TherapistID, in.VoucherCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:                        uuid.New().String(),
		CashierID:                 cashierID,
		IncludeTherapistOnInvoice: in.IncludeTherapistOnInvoice,
		VoucherCode:               normalizeCode(in.VoucherCode),
		PaymentMethod:             paymentMethod,
		PaymentStatus:             in.PaymentStatus,
		Status:                    entity.SaleStatusCompleted,
		Notes:                     in.Notes,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if customer != nil {
		sale.CustomerID = &customer.ID
	}
	if therapist != nil {
		sale.TherapistID = &therapist.ID
	}
	applyFees(sale, in.AdditionalFee, in.TransportationFee)

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Por cada línea: bloquear la fila del producto, verificar y descontar
		// stock, y tomar el snapshot de nombre y precios.
		for _, line := range in.Items {
			product, err := inventory.Decrement(productRepo, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			sale.Items = append(sale.Items, entity.SaleItem{
				ProductID: product.ID,
				Name:      product.Name,
				BasePrice: product.BasePrice,
				Price:     product.Price,
				Quantity:  line.Quantity,
				Note:      line.Note,
			})
		}

		applyBreakdown(sale, voucher)
		return saleRepo.Create(sale)
	})
	if err != nil {
		if domain.IsInsufficientStock(err) {
			metrics.RecordInsufficientStock()
		}
		return nil, err
	}

	metrics.RecordSaleCreated(sale.PaymentStatus)
	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("payment_status", sale.PaymentStatus).
		Str("total", sale.TotalAmount.String()).
		Msg("venta creada")

	if customer != nil {
		sale.CustomerName = customer.Name
		sale.CustomerPhone = customer.Phone
	}
	if therapist != nil {
		sale.TherapistName = therapist.Name
	}
	return toResponse(sale), nil
}

// UpdateSale edita una venta Unpaid y concilia el stock contra la revisión
// anterior: por cada producto del conjunto unión, delta = cantidad original
// menos cantidad nueva; positivo restaura stock, negativo descuenta más.
// Los ítems conservados mantienen su snapshot de precios; los agregados toman
// snapshot nuevo del catálogo.
func (uc *UseCase) UpdateSale(ctx context.Context, saleID string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrSaleNotFound
	}
	if existing.IsRetracted() {
		return nil, domain.ErrSaleRetracted
	}
	if existing.IsPaid() {
		return nil, domain.ErrSalePaid
	}

	customer, therapist, voucher, err := uc.resolveRefs(in.CustomerID, in.TherapistID, in.VoucherCode)
	if err != nil {
		return nil, err
	}

	// Cantidades por producto de la revisión persistida y de la nueva.
	originalQty := make(map[string]int)
	for _, it := range existing.Items {
		originalQty[it.ProductID] += it.Quantity
	}
	newQty := make(map[string]int)
	for _, line := range in.Items {
		newQty[line.ProductID] += line.Quantity
	}

	// Snapshots de la revisión persistida, para los productos conservados.
	snapshots := make(map[string]entity.SaleItem)
	for _, it := range existing.Items {
		if _, ok := snapshots[it.ProductID]; !ok {
			snapshots[it.ProductID] = it
		}
	}

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Conciliación sobre la unión de productos de ambas revisiones.
		fresh := make(map[string]*entity.Product)
		for pid := range union(originalQty, newQty) {
			delta := originalQty[pid] - newQty[pid]
			switch {
			case delta > 0:
				if _, err := inventory.Restore(productRepo, pid, delta); err != nil {
					return err
				}
			case delta < 0:
				product, err := inventory.Decrement(productRepo, pid, -delta)
				if err != nil {
					return err
				}
				fresh[pid] = product
			}
		}

		items := make([]entity.SaleItem, 0, len(in.Items))
		for _, line := range in.Items {
			if snap, ok := snapshots[line.ProductID]; ok {
				snap.Quantity = line.Quantity
				snap.Note = line.Note
				items = append(items, snap)
				continue
			}
			product := fresh[line.ProductID]
			items = append(items, entity.SaleItem{
				ProductID: product.ID,
				Name:      product.Name,
				BasePrice: product.BasePrice,
				Price:     product.Price,
				Quantity:  line.Quantity,
				Note:      line.Note,
			})
		}

		existing.CustomerID = nil
		if customer != nil {
			existing.CustomerID = &customer.ID
		}
		existing.TherapistID = nil
		if therapist != nil {
			existing.TherapistID = &therapist.ID
		}
		existing.IncludeTherapistOnInvoice = in.IncludeTherapistOnInvoice
		existing.Items = items
		existing.VoucherCode = normalizeCode(in.VoucherCode)
		applyFees(existing, in.AdditionalFee, in.TransportationFee)
		applyBreakdown(existing, voucher)
		existing.Notes = in.Notes
		existing.UpdatedAt = time.Now()

		return saleRepo.Update(existing)
	})
	if err != nil {
		if domain.IsInsufficientStock(err) {
			metrics.RecordInsufficientStock()
		}
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", existing.ID).
		Str("total", existing.TotalAmount.String()).
		Msg("venta actualizada")

	existing.CustomerName = ""
	existing.CustomerPhone = ""
	if customer != nil {
		existing.CustomerName = customer.Name
		existing.CustomerPhone = customer.Phone
	}
	existing.TherapistName = ""
	if therapist != nil {
		existing.TherapistName = therapist.Name
	}
	return toResponse(existing), nil
}

// MarkPaid cobra una venta pendiente. El UPDATE condicional en el repositorio
// garantiza que una venta ya pagada no se cobre dos veces.
func (uc *UseCase) MarkPaid(ctx context.Context, saleID string, in dto.MarkPaidRequest) (*dto.SaleResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrSaleNotFound
	}
	if existing.IsRetracted() {
		return nil, domain.ErrSaleRetracted
	}

	ok, err := uc.saleRepo.MarkPaid(saleID, in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSaleAlreadyPaid
	}

	uc.log.Info().
		Str("sale_id", saleID).
		Str("payment_method", in.PaymentMethod).
		Msg("venta cobrada")

	existing.PaymentStatus = entity.PaymentStatusPaid
	existing.PaymentMethod = in.PaymentMethod
	existing.UpdatedAt = time.Now()
	return toResponse(existing), nil
}

// RetractSale anula una venta y restaura el stock de todas sus líneas.
// El guard condicional del repositorio hace la retractación idempotente:
// una segunda llamada no vuelve a restaurar stock.
func (uc *UseCase) RetractSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	var retracted *entity.Sale

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}

		ok, err := saleRepo.Retract(saleID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrSaleRetracted
		}

		qtyByProduct := make(map[string]int)
		for _, it := range sale.Items {
			qtyByProduct[it.ProductID] += it.Quantity
		}
		for pid, qty := range qtyByProduct {
			if _, err := inventory.Restore(productRepo, pid, qty); err != nil {
				return err
			}
		}

		sale.Status = entity.SaleStatusRetracted
		sale.UpdatedAt = time.Now()
		retracted = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordSaleRetracted()
	uc.log.Info().
		Str("sale_id", saleID).
		Msg("venta retractada, stock restaurado")

	return toResponse(retracted), nil
}

// GetSale devuelve una venta con sus ítems y nombres resueltos.
func (uc *UseCase) GetSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return toResponse(sale), nil
}

// ListSales devuelve cabeceras de ventas, más recientes primero.
func (uc *UseCase) ListSales(ctx context.Context, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.Normalize()
	sales, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toResponse(s))
	}
	return out, nil
}

// resolveRefs valida cliente, terapeuta y voucher antes de abrir la
// transacción. El cliente es opcional (venta de mostrador): solo se resuelve
// si viene un ID, pero si viene debe existir.
func (uc *UseCase) resolveRefs(customerID, therapistID, voucherCode string) (*entity.Customer, *entity.Therapist, *pricing.Voucher, error) {
	var customer *entity.Customer
	if customerID != "" {
		var err error
		customer, err = uc.customerRepo.GetByID(customerID)
		if err != nil {
			return nil, nil, nil, err
		}
		if customer == nil {
			return nil, nil, nil, domain.ErrCustomerNotFound
		}
	}

	var therapist *entity.Therapist
	if therapistID != "" {
		t, err := uc.therapistRepo.GetByID(therapistID)
		if err != nil {
			return nil, nil, nil, err
		}
		if t == nil || !t.IsActive {
			return nil, nil, nil, domain.ErrTherapistNotFound
		}
		therapist = t
	}

	var voucher *pricing.Voucher
	if code := normalizeCode(voucherCode); code != "" {
		v, err := uc.voucherRepo.GetByCode(code)
		if err != nil {
			return nil, nil, nil, err
		}
		if v == nil || !v.IsActive {
			return nil, nil, nil, domain.ErrVoucherNotFound
		}
		voucher = &pricing.Voucher{Type: v.Type, Value: v.Value}
	}

	return customer, therapist, voucher, nil
}

// applyFees copia los recargos de la petición a la entidad.
func applyFees(sale *entity.Sale, fee *dto.AdditionalFeeRequest, transport *dto.TransportationFeeRequest) {
	sale.AdditionalFee = entity.AdditionalFee{}
	if fee != nil {
		sale.AdditionalFee = entity.AdditionalFee{
			Amount:           decimal.NewFromInt(fee.Amount),
			Description:      fee.Description,
			IncludeOnInvoice: fee.IncludeOnInvoice,
		}
	}
	sale.TransportationFee = entity.TransportationFee{}
	if transport != nil {
		sale.TransportationFee = entity.TransportationFee{
			Amount:           decimal.NewFromInt(transport.Amount),
			IncludeOnInvoice: transport.IncludeOnInvoice,
		}
	}
}

// applyBreakdown recalcula subtotal, descuento y total desde los snapshots.
func applyBreakdown(sale *entity.Sale, voucher *pricing.Voucher) {
	lines := make([]pricing.LineItem, 0, len(sale.Items))
	for _, it := range sale.Items {
		lines = append(lines, pricing.LineItem{Price: it.Price, Quantity: it.Quantity})
	}
	b := pricing.Compute(lines, voucher, sale.AdditionalFee.Amount, sale.TransportationFee.Amount)
	sale.Subtotal = b.Subtotal
	sale.Discount = b.Discount
	sale.TotalAmount = b.Total
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func union(a, b map[string]int) map[string]struct{} {
	u := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		u[k] = struct{}{}
	}
	for k := range b {
		u[k] = struct{}{}
	}
	return u
}

func toResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		CashierID:     s.CashierID,
		CashierName:   s.CashierName,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		TherapistName: s.TherapistName,
		Subtotal:      s.Subtotal.IntPart(),
		Discount:      s.Discount.IntPart(),
		VoucherCode:   s.VoucherCode,
		TotalAmount:   s.TotalAmount.IntPart(),
		PaymentStatus: s.PaymentStatus,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.CustomerID != nil {
		resp.CustomerID = *s.CustomerID
	}
	if s.TherapistID != nil {
		resp.TherapistID = *s.TherapistID
	}
	if !s.AdditionalFee.Amount.IsZero() || s.AdditionalFee.Description != "" {
		resp.AdditionalFee = &dto.FeeResponse{
			Amount:           s.AdditionalFee.Amount.IntPart(),
			Description:      s.AdditionalFee.Description,
			IncludeOnInvoice: s.AdditionalFee.IncludeOnInvoice,
		}
	}
	if !s.TransportationFee.Amount.IsZero() {
		resp.TransportationFee = &dto.FeeResponse{
			Amount:           s.TransportationFee.Amount.IntPart(),
			IncludeOnInvoice: s.TransportationFee.IncludeOnInvoice,
		}
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			BasePrice: it.BasePrice.IntPart(),
			Price:     it.Price.IntPart(),
			Quantity:  it.Quantity,
			Note:      it.Note,
		})
	}
	return resp
}
