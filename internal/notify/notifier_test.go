package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubSink struct {
	alerts []LowStockAlert
}

func (s *stubSink) LowStock(alert LowStockAlert) {
	s.alerts = append(s.alerts, alert)
}

func TestMultiFansOut(t *testing.T) {
	a, b := &stubSink{}, &stubSink{}
	m := Multi{a, b}

	alert := LowStockAlert{InventoryID: 1, ProductID: 2, Quantity: 3, Threshold: 10}
	m.LowStock(alert)

	assert.Equal(t, []LowStockAlert{alert}, a.alerts)
	assert.Equal(t, []LowStockAlert{alert}, b.alerts)
}

func TestLogNotifierWritesWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	n := NewLogNotifier(zap.New(core))

	n.LowStock(LowStockAlert{
		InventoryID: 4,
		ProductID:   9,
		ProductName: "Laptop",
		SKU:         "LAP123",
		Quantity:    2,
		Threshold:   10,
	})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "low inventory alert", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 9, fields["product_id"])
	assert.EqualValues(t, 2, fields["quantity"])
	assert.Equal(t, "LAP123", fields["sku"])
}
