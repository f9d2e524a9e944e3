package cart

// Snapshot is the product data a line was priced with, resolved from the
// catalog at load time. A nil snapshot means the product could not be
// resolved; such lines contribute 0 to the subtotal.
type Snapshot struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Image     string `json:"image,omitempty"`
	Stock     int    `json:"stock"`
}

type Line struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Product   *Snapshot `json:"product,omitempty"`
}
