package models

// EmailContent is the request body for notifying a product's supplier.
type EmailContent struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
