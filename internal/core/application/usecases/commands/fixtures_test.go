package commands_test

import (
	"log/slog"
	"testing"

	"coordinator/internal/core/domain/model/kernel"
	"coordinator/internal/core/domain/model/order"
	"coordinator/internal/core/domain/model/volunteer"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testAddress() kernel.Address {
	return kernel.NewAddress("12A", "Riverside", "Riverside PO", "Kochi", "Ernakulam", "Kerala", "682001")
}

func makeTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Anita Menon", "+91-9900112233",
		"Mineral water 20L", 4, 75, testAddress(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func makeActiveVolunteer(t *testing.T, code string, address kernel.Address) *volunteer.Volunteer {
	t.Helper()
	v, err := volunteer.NewVolunteer(kernel.NewUUID(), code, "Suresh Kumar",
		"+91-9800112233", "suresh@example.com", address, 5, true)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func makePendingVolunteer(code string) (*volunteer.Volunteer, error) {
	return volunteer.NewVolunteer(kernel.NewUUID(), code, "Ravi Nair",
		"+91-9700112233", "", testAddress(), 5, false)
}

// confirmOrder walks an order from payment_pending to confirmed.
func confirmOrder(t *testing.T, o *order.Order) {
	t.Helper()
	if err := o.MarkPaid(); err != nil {
		t.Fatal(err)
	}
	if err := o.Confirm(); err != nil {
		t.Fatal(err)
	}
}
