package services

import (
	"errors"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/IshuIsSleepy/KhanaKhalo/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	MenuRepo   *repository.MenuRepository
	VendorRepo *repository.VendorRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	vendorRepo *repository.VendorRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, VendorRepo: vendorRepo}
}

// ----- DTOs from controller -----

type OrderItemIn struct {
	ID       uint   `json:"id"`
	Quantity int    `json:"quantity"`
	Options  string `json:"options"`
}

type CreateOrderReq struct {
	VendorID uint          `json:"vendor_id"`
	Items    []OrderItemIn `json:"items"`
	Method   string        `json:"method"`
}

type CreateOrderRes struct {
	OrderID uint    `json:"order_id"`
	Code    string  `json:"code"`
	Total   float64 `json:"total"`
}

// Create places an order. Everything — vendor check, item resolution, order
// and line rows, total, counter increment — commits or rolls back as one
// unit, so a bad item id in a multi-item cart leaves nothing behind.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	method, ok := entity.ParseOrderMethod(req.Method)
	if !ok {
		return nil, ErrInvalidMethod
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		vendor, err := s.VendorRepo.FindByID(req.VendorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		order := entity.Order{
			Code:     uuid.NewString(),
			Status:   entity.StatusPending,
			Method:   method,
			UserID:   userID,
			VendorID: vendor.ID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		var total float64
		for _, it := range req.Items {
			if it.Quantity < 1 {
				return ErrInvalidQuantity
			}
			m, err := s.MenuRepo.GetBasics(it.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if m.VendorID != vendor.ID {
				return ErrItemWrongVendor
			}
			if !m.IsAvailable {
				return ErrItemUnavailable
			}

			oi := entity.OrderItem{
				OrderID:       order.ID,
				MenuItemID:    m.ID,
				Quantity:      it.Quantity,
				UnitPrice:     m.Price, // snapshot, menu edits never reprice this line
				Customization: it.Options,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			total += m.Price * float64(it.Quantity)
		}

		if err := tx.Model(&order).Update("total_amount", total).Error; err != nil {
			return err
		}
		if err := s.VendorRepo.IncrementLoad(tx, vendor.ID); err != nil {
			return err
		}

		out = CreateOrderRes{OrderID: order.ID, Code: order.Code, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- List & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID          uint               `json:"id"`
	Code        string             `json:"code"`
	TotalAmount float64            `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	Method      entity.OrderMethod `json:"method"`
	VendorID    uint               `json:"vendorId"`
	Items       []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Code: o.Code, TotalAmount: o.TotalAmount,
		Status: o.Status, Method: o.Method, VendorID: o.VendorID, Items: items,
	}, nil
}

// DashboardForOwner lists the incoming orders of the vendor operated by the
// caller.
func (s *OrderService) DashboardForOwner(ownerID uint, status *entity.OrderStatus, limit int) ([]repository.VendorOrderSummary, error) {
	vendor, err := s.VendorRepo.FindByOwner(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListOrdersForVendor(vendor.ID, status, limit)
}
