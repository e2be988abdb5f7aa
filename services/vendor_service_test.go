package services

import (
	"testing"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/stretchr/testify/require"
)

func TestHomeScopedToCallerUniversity(t *testing.T) {
	f := newFixture(t)
	svc := f.vendorService()

	// A vendor on another campus must stay invisible.
	other := entity.University{Name: "Far Away U"}
	require.NoError(t, f.db.Create(&other).Error)
	require.NoError(t, f.db.Create(&entity.Vendor{
		Name: "Far Stall", UniversityID: other.ID, MaxOrders: 5,
	}).Error)

	uni, vendors, err := svc.HomeForUser(f.student.ID)
	require.NoError(t, err)
	require.Equal(t, f.university.ID, uni.ID)
	require.Len(t, vendors, 1)
	require.Equal(t, f.vendor.ID, vendors[0].ID)
	require.Equal(t, entity.CrowdNotCrowded, vendors[0].CrowdStatus)
}

func TestHomeWithoutProfile(t *testing.T) {
	f := newFixture(t)
	svc := f.vendorService()

	// The owner account was created without a profile.
	_, _, err := svc.HomeForUser(f.owner.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMenuListing(t *testing.T) {
	f := newFixture(t)
	svc := f.vendorService()

	vendor, items, err := svc.Menu(f.vendor.ID)
	require.NoError(t, err)
	require.Equal(t, f.vendor.ID, vendor.ID)
	require.Len(t, items, 2)

	_, _, err = svc.Menu(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOwnerMenuManagement(t *testing.T) {
	f := newFixture(t)
	svc := f.vendorService()

	item, err := svc.CreateMenuItem(f.owner.ID, &MenuItemIn{Name: "Samosa", Price: 15})
	require.NoError(t, err)
	require.Equal(t, f.vendor.ID, item.VendorID)
	require.True(t, item.IsAvailable)

	// Students don't run a vendor.
	_, err = svc.CreateMenuItem(f.student.ID, &MenuItemIn{Name: "Nope", Price: 1})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateMenuItem(f.owner.ID, item.ID, map[string]any{
		"price": 20.0, "is_available": false,
	})
	require.NoError(t, err)
	require.InDelta(t, 20.0, updated.Price, 1e-9)
	require.False(t, updated.IsAvailable)

	_, err = svc.UpdateMenuItem(f.student.ID, item.ID, map[string]any{"price": 1.0})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateMenuItem(f.owner.ID, 9999, map[string]any{"price": 1.0})
	require.ErrorIs(t, err, ErrNotFound)
}
