package models

import json "github.com/goccy/go-json"

// PurchaseData describes a single revenue event against an existing install
// record. GameInstallID is the only required field and is always emitted on
// the wire, even when empty, so the receiving schema keeps a stable shape.
type PurchaseData struct {
	GameInstallID  string // UUID of an existing install record
	PurchaseType   string // e.g. "in_app", "ad_revenue", "crypto"
	PurchaseAmount float64
	Currency       string // e.g. "USD"
	TransactionID  string
	ItemSKU        string
	ItemName       string
	Quantity       int

	// Metadata is spliced into the payload verbatim. It is neither escaped
	// nor validated: the caller guarantees it is a well-formed JSON fragment.
	Metadata json.RawMessage
}

// NewPurchaseData returns a purchase for the given install with Quantity 1.
func NewPurchaseData(gameInstallID string) PurchaseData {
	return PurchaseData{
		GameInstallID: gameInstallID,
		Quantity:      1,
	}
}
