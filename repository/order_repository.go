package repository

import (
	"time"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint               `json:"id"`
	Code        string             `json:"code"`
	VendorID    uint               `json:"vendorId"`
	TotalAmount float64            `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	Method      entity.OrderMethod `json:"method"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ListOrdersForUser feeds the my-orders page, newest first.
func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, code, vendor_id, total_amount, status, method, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type VendorOrderSummary struct {
	ID          uint               `json:"id"`
	Code        string             `json:"code"`
	UserID      uint               `json:"userId"`
	Customer    string             `json:"customer"`
	TotalAmount float64            `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	Method      entity.OrderMethod `json:"method"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ListOrdersForVendor feeds the vendor dashboard, joined with the customer
// name.
func (r *OrderRepository) ListOrdersForVendor(vendorID uint, status *entity.OrderStatus, limit int) ([]VendorOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.code, o.user_id, u.username AS customer, o.total_amount, o.status, o.method, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.vendor_id = ? AND o.deleted_at IS NULL", vendorID)
	if status != nil {
		db = db.Where("o.status = ?", *status)
	}
	var out []VendorOrderSummary
	err := db.Order("o.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// UpdateStatusGuard flips the status only when the stored value still equals
// from. Zero rows affected means another writer got there first (or the
// transition was stale) and the caller must not touch the vendor counter.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, quantity, unit_price, customization, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
