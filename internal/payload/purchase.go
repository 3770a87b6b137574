package payload

import "glitchsdk/models"

// PurchaseJSON renders a purchase event. game_install_id is emitted even
// when empty; every other member follows the usual omission rules. The
// metadata fragment, when supplied, is spliced in verbatim.
func PurchaseJSON(data models.PurchaseData) string {
	root := newObject()
	root.strAlways("game_install_id", data.GameInstallID)
	root.str("purchase_type", data.PurchaseType)
	root.dec("purchase_amount", data.PurchaseAmount)
	root.str("currency", data.Currency)
	root.str("transaction_id", data.TransactionID)
	root.str("item_sku", data.ItemSKU)
	root.str("item_name", data.ItemName)
	root.num("quantity", data.Quantity)
	root.raw("metadata", string(data.Metadata))
	return root.String()
}
