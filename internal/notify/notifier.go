// Package notify decouples low-stock detection from alert delivery. The
// inventory service emits LowStockAlert values to a Notifier; what happens to
// them (log line, websocket broadcast, email) is the sink's business.
package notify

import (
	"encoding/json"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/ws"

	"go.uber.org/zap"
)

// LowStockAlert identifies an inventory row whose quantity fell below the
// caller-supplied threshold.
type LowStockAlert struct {
	InventoryID uint   `json:"inventory_id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
}

type Notifier interface {
	LowStock(alert LowStockAlert)
}

// LogNotifier writes alerts to the application log.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) LowStock(alert LowStockAlert) {
	n.log.Warn("low inventory alert",
		zap.Uint("inventory_id", alert.InventoryID),
		zap.Uint("product_id", alert.ProductID),
		zap.String("product_name", alert.ProductName),
		zap.String("sku", alert.SKU),
		zap.Int("quantity", alert.Quantity),
		zap.Int("threshold", alert.Threshold),
	)
}

// HubNotifier broadcasts alerts to connected websocket clients.
type HubNotifier struct {
	hub *ws.Hub
}

func NewHubNotifier(hub *ws.Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) LowStock(alert LowStockAlert) {
	payload := map[string]interface{}{
		"type":  "low_stock_alert",
		"alert": alert,
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	n.hub.Broadcast <- msg
}

// Multi fans one alert out to several sinks.
type Multi []Notifier

func (m Multi) LowStock(alert LowStockAlert) {
	for _, n := range m {
		n.LowStock(alert)
	}
}
