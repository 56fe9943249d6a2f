package domain

import "time"

// Product is a catalog entry protected by the admin role for mutations.
type Product struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Title             string    `json:"title" bson:"title"`
	Brand             string    `json:"brand" bson:"brand"`
	Price             float64   `json:"price" bson:"price"`
	AvailableQuantity int64     `json:"availableQuantity" bson:"available_quantity"`
	Rating            float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	Description       string    `json:"description" bson:"description"`
	Images            []string  `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// QuantityAction names the supported stock adjustments on a product.
type QuantityAction string

const (
	QuantityIncrease        QuantityAction = "increase"
	QuantityDecrease        QuantityAction = "decrease"
	QuantityIncreaseByValue QuantityAction = "increase-by-value"
)

// Valid reports whether the action is one of the supported verbs.
func (a QuantityAction) Valid() bool {
	switch a {
	case QuantityIncrease, QuantityDecrease, QuantityIncreaseByValue:
		return true
	}
	return false
}
