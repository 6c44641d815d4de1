package domain

// CustomerStatus is the single-letter guest account state.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "A"
	CustomerInactive  CustomerStatus = "I"
	CustomerSuspended CustomerStatus = "S"
)

var customerStatusLabels = map[CustomerStatus]string{
	CustomerActive:    "Active",
	CustomerInactive:  "Inactive",
	CustomerSuspended: "Suspended",
}

func (s CustomerStatus) Label() string {
	if label, ok := customerStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s CustomerStatus) Valid() bool {
	_, ok := customerStatusLabels[s]
	return ok
}

type Customer struct {
	ID         int64          `json:"id"`
	CustomerID string         `json:"customer_id"`
	Username   string         `json:"username"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Gender     string         `json:"gender"`
	Location   string         `json:"location"`
	Status     CustomerStatus `json:"status"`
	CreatedAt  Timestamp      `json:"created_at"`
	UpdatedAt  Timestamp      `json:"updated_at"`
}

func (c Customer) DisplayName() string {
	if c.FirstName != "" || c.LastName != "" {
		name := c.FirstName
		if c.LastName != "" {
			if name != "" {
				name += " "
			}
			name += c.LastName
		}
		return name
	}
	return c.Username
}
