package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jmontoya/spapos-api/internal/domain/entity"
	"github.com/jmontoya/spapos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx). Cabecera en sales, líneas en sale_items.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleSelect = `
	SELECT s.id, s.cashier_id, s.customer_id, s.therapist_id, s.include_therapist_on_invoice,
	       s.subtotal, s.discount, s.voucher_code,
	       s.additional_fee_amount, s.additional_fee_description, s.additional_fee_on_invoice,
	       s.transport_fee_amount, s.transport_fee_on_invoice,
	       s.total_amount, s.payment_method, s.payment_status, s.status, s.notes,
	       s.created_at, s.updated_at,
	       u.username, c.name, c.phone, t.name
	FROM sales s
	LEFT JOIN users u ON u.id = s.cashier_id
	LEFT JOIN customers c ON c.id = s.customer_id
	LEFT JOIN therapists t ON t.id = s.therapist_id`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var cashierName, customerName, customerPhone, therapistName *string
	err := row.Scan(
		&s.ID, &s.CashierID, &s.CustomerID, &s.TherapistID, &s.IncludeTherapistOnInvoice,
		&s.Subtotal, &s.Discount, &s.VoucherCode,
		&s.AdditionalFee.Amount, &s.AdditionalFee.Description, &s.AdditionalFee.IncludeOnInvoice,
		&s.TransportationFee.Amount, &s.TransportationFee.IncludeOnInvoice,
		&s.TotalAmount, &s.PaymentMethod, &s.PaymentStatus, &s.Status, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
		&cashierName, &customerName, &customerPhone, &therapistName,
	)
	if err != nil {
		return nil, err
	}
	s.CashierName = emptyIfNull(cashierName)
	s.CustomerName = emptyIfNull(customerName)
	s.CustomerPhone = emptyIfNull(customerPhone)
	s.TherapistName = emptyIfNull(therapistName)
	return &s, nil
}

// Create persiste la cabecera y sus líneas en el mismo Querier.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, cashier_id, customer_id, therapist_id, include_therapist_on_invoice,
			subtotal, discount, voucher_code,
			additional_fee_amount, additional_fee_description, additional_fee_on_invoice,
			transport_fee_amount, transport_fee_on_invoice,
			total_amount, payment_method, payment_status, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CashierID, sale.CustomerID, sale.TherapistID, sale.IncludeTherapistOnInvoice,
		sale.Subtotal, sale.Discount, sale.VoucherCode,
		sale.AdditionalFee.Amount, sale.AdditionalFee.Description, sale.AdditionalFee.IncludeOnInvoice,
		sale.TransportationFee.Amount, sale.TransportationFee.IncludeOnInvoice,
		sale.TotalAmount, sale.PaymentMethod, sale.PaymentStatus, sale.Status, sale.Notes,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return r.insertItems(sale.ID, sale.Items)
}

func (r *SaleRepo) insertItems(saleID string, items []entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, name, base_price, price, quantity, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			uuid.New().String(), saleID, it.ProductID, it.Name,
			it.BasePrice, it.Price, it.Quantity, it.Note,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

func (r *SaleRepo) loadItems(saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, name, base_price, price, quantity, note
		 FROM sale_items WHERE sale_id = $1 ORDER BY name`, saleID)
	if err != nil {
		return nil, fmt.Errorf("load sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.BasePrice, &it.Price, &it.Quantity, &it.Note); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetByID obtiene la venta con ítems y nombres resueltos.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, err := scanSale(r.q.QueryRow(context.Background(), saleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.loadItems(id)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return sale, nil
}

// List devuelve cabeceras (sin ítems), más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(),
		saleSelect+` ORDER BY s.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update reescribe la cabecera y reemplaza las líneas (edición de venta Unpaid).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET customer_id = $2, therapist_id = $3, include_therapist_on_invoice = $4,
			subtotal = $5, discount = $6, voucher_code = $7,
			additional_fee_amount = $8, additional_fee_description = $9, additional_fee_on_invoice = $10,
			transport_fee_amount = $11, transport_fee_on_invoice = $12,
			total_amount = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.TherapistID, sale.IncludeTherapistOnInvoice,
		sale.Subtotal, sale.Discount, sale.VoucherCode,
		sale.AdditionalFee.Amount, sale.AdditionalFee.Description, sale.AdditionalFee.IncludeOnInvoice,
		sale.TransportationFee.Amount, sale.TransportationFee.IncludeOnInvoice,
		sale.TotalAmount, sale.Notes, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM sale_items WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return r.insertItems(sale.ID, sale.Items)
}

// MarkPaid marca la venta como pagada. El WHERE condicional evita el doble
// cobro: devuelve false si no estaba Unpaid.
func (r *SaleRepo) MarkPaid(saleID, paymentMethod string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales
		 SET payment_status = $2, payment_method = $3, updated_at = now()
		 WHERE id = $1 AND payment_status = $4 AND status <> $5`,
		saleID, entity.PaymentStatusPaid, paymentMethod,
		entity.PaymentStatusUnpaid, entity.SaleStatusRetracted,
	)
	if err != nil {
		return false, fmt.Errorf("mark sale paid: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Retract marca la venta como retractada. El WHERE condicional hace la
// operación idempotente: devuelve false si ya estaba retractada.
func (r *SaleRepo) Retract(saleID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2, updated_at = now()
		 WHERE id = $1 AND status <> $2`,
		saleID, entity.SaleStatusRetracted,
	)
	if err != nil {
		return false, fmt.Errorf("retract sale: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
