package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCrowdStatusBoundaries(t *testing.T) {
	cases := []struct {
		current, max int
		want         string
	}{
		{8, 10, CrowdVeryCrowded},
		{5, 10, CrowdModeratelyCrowded},
		{4, 10, CrowdNotCrowded},
		{0, 10, CrowdNotCrowded},
		{10, 10, CrowdVeryCrowded},
		{0, 0, CrowdNotAvailable},
		{7, 0, CrowdNotAvailable},
	}
	for _, tc := range cases {
		v := Vendor{CurrentOrders: tc.current, MaxOrders: tc.max}
		require.Equal(t, tc.want, v.CrowdStatus(), "current=%d max=%d", tc.current, tc.max)
	}
}

func TestIsOpen(t *testing.T) {
	v := Vendor{OpeningTime: "09:00", ClosingTime: "17:30"}

	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.Local)
	}

	require.False(t, v.IsOpen(at(8, 59)))
	require.True(t, v.IsOpen(at(9, 0)))
	require.True(t, v.IsOpen(at(13, 0)))
	require.False(t, v.IsOpen(at(17, 30)))
	require.False(t, v.IsOpen(at(23, 0)))

	// Missing or junk hours read as closed.
	require.False(t, (&Vendor{}).IsOpen(at(12, 0)))
	require.False(t, (&Vendor{OpeningTime: "soon", ClosingTime: "late"}).IsOpen(at(12, 0)))
}

func TestParseOrderStatusAndTransitions(t *testing.T) {
	s, ok := ParseOrderStatus("  completed ")
	require.True(t, ok)
	require.Equal(t, StatusCompleted, s)

	_, ok = ParseOrderStatus("shipped")
	require.False(t, ok)

	require.True(t, StatusPending.CanTransitionTo(StatusAccepted))
	require.True(t, StatusPending.CanTransitionTo(StatusRejected))
	require.True(t, StatusAccepted.CanTransitionTo(StatusReady))
	require.True(t, StatusReady.CanTransitionTo(StatusCompleted))

	require.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	require.False(t, StatusCompleted.CanTransitionTo(StatusPending))
	require.False(t, StatusRejected.CanTransitionTo(StatusAccepted))

	require.True(t, StatusCompleted.IsTerminal())
	require.True(t, StatusRejected.IsTerminal())
	require.False(t, StatusReady.IsTerminal())
}

func TestParseOrderMethod(t *testing.T) {
	m, ok := ParseOrderMethod("pickup")
	require.True(t, ok)
	require.Equal(t, MethodPickup, m)

	m, ok = ParseOrderMethod("Delivery")
	require.True(t, ok)
	require.Equal(t, MethodDelivery, m)

	_, ok = ParseOrderMethod("drone")
	require.False(t, ok)
}
