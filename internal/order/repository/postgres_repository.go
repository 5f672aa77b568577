package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/freshgrocer/storefront-service/internal/order/domain"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
)

type postgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) OrderRepository {
	return &postgresOrderRepository{db: db}
}

// CreateOrderWithItems saves the order and its items in one transaction.
func (r *postgresOrderRepository) CreateOrderWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("CreateOrderWithItems: failed to begin tx", err)
		return err
	}
	defer tx.Rollback() // no-op after a successful commit

	orderQuery := `INSERT INTO orders (owner_id, status, subtotal, shipping_fee, total, payment_method,
                       first_name, last_name, email, phone, address, city, state, zip_code, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
                   RETURNING id, created_at, updated_at`

	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	if order.Status == "" {
		order.Status = domain.StatusPlaced
	}

	err = tx.QueryRowContext(ctx, orderQuery,
		order.OwnerID, order.Status, order.Subtotal, order.ShippingFee, order.Total, order.PaymentMethod,
		order.Shipping.FirstName, order.Shipping.LastName, order.Shipping.Email, order.Shipping.Phone,
		order.Shipping.Address, order.Shipping.City, order.Shipping.State, order.Shipping.ZipCode,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		logger.Error("CreateOrderWithItems: failed to insert order", err)
		return err
	}

	itemStmt, err := tx.PrepareContext(ctx, `INSERT INTO order_items (order_id, product_id, product_name, quantity, price_at_purchase, created_at)
                                            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`)
	if err != nil {
		logger.Error("CreateOrderWithItems: failed to prepare item statement", err)
		return err
	}
	defer itemStmt.Close()

	for i := range items {
		items[i].OrderID = order.ID
		items[i].CreatedAt = order.CreatedAt
		err = itemStmt.QueryRowContext(ctx, items[i].OrderID, items[i].ProductID, items[i].ProductName,
			items[i].Quantity, items[i].PriceAtPurchase, items[i].CreatedAt).
			Scan(&items[i].ID, &items[i].CreatedAt)
		if err != nil {
			logger.Error("CreateOrderWithItems: failed to insert item for product "+items[i].ProductID, err)
			return err // deferred rollback kicks in
		}
	}
	order.Items = items

	return tx.Commit()
}

func (r *postgresOrderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, owner_id, status, subtotal, shipping_fee, total, payment_method,
                     first_name, last_name, email, phone, address, city, state, zip_code, created_at, updated_at
              FROM orders WHERE id = $1`
	var o domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.OwnerID, &o.Status, &o.Subtotal, &o.ShippingFee, &o.Total, &o.PaymentMethod,
		&o.Shipping.FirstName, &o.Shipping.LastName, &o.Shipping.Email, &o.Shipping.Phone,
		&o.Shipping.Address, &o.Shipping.City, &o.Shipping.State, &o.Shipping.ZipCode,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		logger.Error("GetOrderByID: query failed", err)
		return nil, err
	}

	items, err := r.getOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *postgresOrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	query := `SELECT id, owner_id, status, subtotal, shipping_fee, total, payment_method,
                     first_name, last_name, email, phone, address, city, state, zip_code, created_at, updated_at
              FROM orders WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		logger.Error("ListOrdersByOwner: query failed", err)
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.OwnerID, &o.Status, &o.Subtotal, &o.ShippingFee, &o.Total, &o.PaymentMethod,
			&o.Shipping.FirstName, &o.Shipping.LastName, &o.Shipping.Email, &o.Shipping.Phone,
			&o.Shipping.Address, &o.Shipping.City, &o.Shipping.State, &o.Shipping.ZipCode,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			logger.Error("ListOrdersByOwner: scan failed", err)
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresOrderRepository) getOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product_id, product_name, quantity, price_at_purchase, created_at
              FROM order_items WHERE order_id = $1`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		logger.Error("getOrderItems: query failed", err)
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var i domain.OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.ProductName, &i.Quantity, &i.PriceAtPurchase, &i.CreatedAt); err != nil {
			logger.Error("getOrderItems: scan failed", err)
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
