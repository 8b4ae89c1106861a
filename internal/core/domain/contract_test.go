package domain

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ContractStatus
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDelivered, false},
		{StatusAccepted, StatusInTransit, true},
		{StatusInTransit, StatusDelivered, true},
		{StatusInTransit, StatusFailed, true},
		{StatusInTransit, StatusPending, false},
		{StatusDelivered, StatusInTransit, false},
		{StatusCancelled, StatusAccepted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestContractGeometryAccessors(t *testing.T) {
	c := &DeliveryContract{
		PickupGeo:  "POINT(120.9821 14.5350)",
		DropoffGeo: GeoJSONPoint{Coordinates: []float64{120.9842, 14.5995}},
	}
	if p := c.PickupPoint(); p == nil || p.Lat != 14.5350 {
		t.Errorf("PickupPoint() = %+v", p)
	}
	if p := c.DropoffPoint(); p == nil || p.Lng != 120.9842 {
		t.Errorf("DropoffPoint() = %+v", p)
	}
	if p := c.CurrentPoint(); p != nil {
		t.Errorf("CurrentPoint() = %+v, want nil for absent geometry", p)
	}
}
