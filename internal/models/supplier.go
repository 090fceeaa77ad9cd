package models

// Supplier represents a vendor supplying products to the store.
type Supplier struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"type:varchar(255);not null"`
	Company string `json:"company" gorm:"type:varchar(255);not null"`
	Email   string `json:"email" gorm:"type:varchar(255);not null"`
	Phone   string `json:"phone" gorm:"type:varchar(20);not null"`
}

// SupplierIn is the request body for creating a supplier.
type SupplierIn struct {
	Name    string `json:"name" validate:"required,max=255"`
	Company string `json:"company" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=20"`
}

// SupplierUpdate carries only the fields the caller set; nil means "leave untouched".
type SupplierUpdate struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Email   *string `json:"email" validate:"omitempty,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
}
