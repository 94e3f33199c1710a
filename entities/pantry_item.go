package entities

import (
	"time"

	"github.com/google/uuid"
)

type PantryItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	Timestamp
}

// ReduceQuantity subtracts amount from the stocked quantity. It refuses to go
// negative: when the stock is insufficient nothing changes and false is returned.
func (p *PantryItem) ReduceQuantity(amount float64) bool {
	if p.Quantity < amount {
		return false
	}
	p.Quantity -= amount
	return true
}

// IncreaseQuantity adds amount to the stocked quantity.
func (p *PantryItem) IncreaseQuantity(amount float64) {
	p.Quantity += amount
}
