package domain

// OrderStatus is the backend's two-letter order state code.
type OrderStatus string

const (
	OrderPending    OrderStatus = "P"
	OrderConfirmed  OrderStatus = "C"
	OrderProcessing OrderStatus = "PR"
	OrderShipped    OrderStatus = "S"
	OrderDelivered  OrderStatus = "D"
	OrderCancelled  OrderStatus = "CA"
	OrderRefunded   OrderStatus = "R"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderPending:    "Pending",
	OrderConfirmed:  "Confirmed",
	OrderProcessing: "Processing",
	OrderShipped:    "Shipped",
	OrderDelivered:  "Delivered",
	OrderCancelled:  "Cancelled",
	OrderRefunded:   "Refunded",
}

// Label degrades gracefully: unknown codes render as the raw code.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// RevenueBearing reports whether the order counts toward revenue totals.
func (s OrderStatus) RevenueBearing() bool {
	switch s {
	case OrderDelivered, OrderConfirmed, OrderProcessing, OrderShipped:
		return true
	}
	return false
}

func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderPending, OrderConfirmed, OrderProcessing, OrderShipped,
		OrderDelivered, OrderCancelled, OrderRefunded,
	}
}

// OrderCustomer is the customer snapshot nested inside an order payload.
type OrderCustomer struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DisplayName mirrors the admin table fallback chain.
func (c OrderCustomer) DisplayName() string {
	if c.Username != "" {
		return c.Username
	}
	if c.FirstName != "" {
		return c.FirstName
	}
	return "N/A"
}

type OrderItemProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OrderItem struct {
	ID       int64            `json:"id"`
	Product  OrderItemProduct `json:"product"`
	Quantity int              `json:"quantity"`
	Price    Amount           `json:"price"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Price.Float() * float64(i.Quantity)
}

type Order struct {
	ID          int64         `json:"id"`
	OrderNumber string        `json:"order_number"`
	Customer    OrderCustomer `json:"customer"`
	Status      OrderStatus   `json:"status"`
	TotalAmount Amount        `json:"total_amount"`
	Notes       string        `json:"notes"`
	OrderItems  []OrderItem   `json:"order_items"`
	CreatedAt   Timestamp     `json:"created_at"`
	UpdatedAt   Timestamp     `json:"updated_at"`
}
