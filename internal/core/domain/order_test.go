package domain

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderPending, OrderPreparing, true},
		{OrderPending, OrderReady, true},
		{OrderPending, OrderServed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPreparing, OrderReady, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderReady, OrderServed, true},
		{OrderReady, OrderCancelled, true},
		{OrderServed, OrderPreparing, false},
		{OrderServed, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderServed, false},
		{OrderPreparing, OrderPending, false},
		{OrderServed, OrderServed, true}, // no-op
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestOrderDeletable(t *testing.T) {
	cases := []struct {
		status  OrderStatus
		payment PaymentStatus
		want    bool
	}{
		{OrderPending, PaymentUnpaid, true},
		{OrderReady, PaymentUnpaid, true},
		{OrderCancelled, PaymentUnpaid, true},
		{OrderServed, PaymentUnpaid, false},
		{OrderPending, PaymentPaid, false},
		{OrderServed, PaymentPaid, false},
	}
	for _, c := range cases {
		o := &Order{Status: c.status, PaymentStatus: c.payment}
		if got := o.Deletable(); got != c.want {
			t.Errorf("status=%s payment=%s: got %v, want %v", c.status, c.payment, got, c.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleAdmin, RoleManager, RoleStaff, RoleCashier} {
		if !ValidRole(r) {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []string{"", "owner", "Admin", "superuser"} {
		if ValidRole(r) {
			t.Errorf("%s should be invalid", r)
		}
	}
}
