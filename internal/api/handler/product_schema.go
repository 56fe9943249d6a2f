package handler

type createProductRequest struct {
	Title             string   `json:"title"             validate:"required"`
	Brand             string   `json:"brand"`
	Price             float64  `json:"price"             validate:"required,gt=0"`
	AvailableQuantity int64    `json:"availableQuantity" validate:"gte=0"`
	Rating            float64  `json:"rating"            validate:"gte=0,lte=5"`
	Description       string   `json:"description"       validate:"required"`
	Images            []string `json:"images"`
}

// updateProductRequest is the partial PUT body: zero-valued fields are
// skipped, so a price of 0 cannot be set through this path.
type updateProductRequest struct {
	Title             string   `json:"title"`
	Brand             string   `json:"brand"`
	Price             float64  `json:"price"             validate:"gte=0"`
	AvailableQuantity int64    `json:"availableQuantity" validate:"gte=0"`
	Rating            float64  `json:"rating"            validate:"gte=0,lte=5"`
	Description       string   `json:"description"`
	Images            []string `json:"images"`
}

type adjustQuantityRequest struct {
	Action   string `json:"action"   validate:"required,oneof=increase decrease increase-by-value"`
	Quantity int64  `json:"quantity"`
}
