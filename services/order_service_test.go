package services

import (
	"testing"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderTotalsAndSnapshot(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	out, err := svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items: []OrderItemIn{
			{ID: f.maggi.ID, Quantity: 2},
			{ID: f.coffee.ID, Quantity: 1, Options: "less ice"},
		},
		Method: "pickup",
	})
	require.NoError(t, err)
	require.InDelta(t, 25.50, out.Total, 1e-9)
	require.NotEmpty(t, out.Code)

	var items []entity.OrderItem
	require.NoError(t, f.db.Where("order_id = ?", out.OrderID).Find(&items).Error)
	require.Len(t, items, 2)

	// Line prices are snapshots: repricing the menu must not move them.
	require.NoError(t, f.db.Model(&entity.MenuItem{}).
		Where("id = ?", f.maggi.ID).Update("price", 99.0).Error)
	var order entity.Order
	require.NoError(t, f.db.First(&order, out.OrderID).Error)
	require.InDelta(t, 25.50, order.TotalAmount, 1e-9)

	byItem := map[uint]entity.OrderItem{}
	for _, it := range items {
		byItem[it.MenuItemID] = it
	}
	require.InDelta(t, 10.00, byItem[f.maggi.ID].UnitPrice, 1e-9)
	require.Equal(t, 2, byItem[f.maggi.ID].Quantity)
	require.InDelta(t, 5.50, byItem[f.coffee.ID].UnitPrice, 1e-9)
	require.Equal(t, "less ice", byItem[f.coffee.ID].Customization)
	require.Equal(t, entity.StatusPending, order.Status)
	require.Equal(t, entity.MethodPickup, order.Method)
}

func TestCreateOrderIncrementsVendorLoad(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	require.Equal(t, 0, f.currentOrders(t))

	_, err := svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items:    []OrderItemIn{{ID: f.maggi.ID, Quantity: 1}},
		Method:   "PICKUP",
	})
	require.NoError(t, err)
	require.Equal(t, 1, f.currentOrders(t))
}

func TestCreateOrderAtomicOnBadItem(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	_, err := svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items: []OrderItemIn{
			{ID: f.maggi.ID, Quantity: 2},
			{ID: 9999, Quantity: 1}, // no such menu item
		},
		Method: "DELIVERY",
	})
	require.ErrorIs(t, err, ErrNotFound)

	// Nothing survives the rollback: no order, no items, counter untouched.
	var orders, items int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, f.db.Model(&entity.OrderItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)
	require.Equal(t, 0, f.currentOrders(t))
}

func TestCreateOrderRejectsForeignAndUnavailableItems(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	other := entity.Vendor{Name: "Other", UniversityID: f.university.ID, MaxOrders: 5}
	require.NoError(t, f.db.Create(&other).Error)
	foreign := entity.MenuItem{Name: "Dosa", Price: 40, IsAvailable: true, VendorID: other.ID}
	require.NoError(t, f.db.Create(&foreign).Error)

	_, err := svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items:    []OrderItemIn{{ID: foreign.ID, Quantity: 1}},
		Method:   "PICKUP",
	})
	require.ErrorIs(t, err, ErrItemWrongVendor)

	require.NoError(t, f.db.Model(&entity.MenuItem{}).
		Where("id = ?", f.maggi.ID).Update("is_available", false).Error)
	_, err = svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items:    []OrderItemIn{{ID: f.maggi.ID, Quantity: 1}},
		Method:   "PICKUP",
	})
	require.ErrorIs(t, err, ErrItemUnavailable)
	require.Equal(t, 0, f.currentOrders(t))
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	_, err := svc.Create(f.student.ID, &CreateOrderReq{VendorID: f.vendor.ID, Method: "PICKUP"})
	require.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items:    []OrderItemIn{{ID: f.maggi.ID, Quantity: 0}},
		Method:   "PICKUP",
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items:    []OrderItemIn{{ID: f.maggi.ID, Quantity: 1}},
		Method:   "carrier-pigeon",
	})
	require.ErrorIs(t, err, ErrInvalidMethod)

	_, err = svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: 9999,
		Items:    []OrderItemIn{{ID: f.maggi.ID, Quantity: 1}},
		Method:   "PICKUP",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDetailForUser(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	out, err := svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items:    []OrderItemIn{{ID: f.coffee.ID, Quantity: 2}},
		Method:   "delivery",
	})
	require.NoError(t, err)

	list, err := svc.ListForUser(f.student.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, out.OrderID, list[0].ID)
	require.Equal(t, entity.MethodDelivery, list[0].Method)

	detail, err := svc.DetailForUser(f.student.ID, out.OrderID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)

	// Another user's order is off limits.
	_, err = svc.DetailForUser(f.owner.ID, out.OrderID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDashboardForOwner(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	_, err := svc.Create(f.student.ID, &CreateOrderReq{
		VendorID: f.vendor.ID,
		Items:    []OrderItemIn{{ID: f.maggi.ID, Quantity: 1}},
		Method:   "PICKUP",
	})
	require.NoError(t, err)

	orders, err := svc.DashboardForOwner(f.owner.ID, nil, 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "asha", orders[0].Customer)

	pending := entity.StatusPending
	orders, err = svc.DashboardForOwner(f.owner.ID, &pending, 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	completed := entity.StatusCompleted
	orders, err = svc.DashboardForOwner(f.owner.ID, &completed, 0)
	require.NoError(t, err)
	require.Empty(t, orders)

	// A user with no vendor has no dashboard.
	_, err = svc.DashboardForOwner(f.student.ID, nil, 0)
	require.ErrorIs(t, err, ErrNotFound)
}
