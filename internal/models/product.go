package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents an inventory item supplied by exactly one Supplier.
type Product struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"type:varchar(255);not null"`
	QuantityInStock int             `json:"quantity_in_stock" gorm:"not null;default:0"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null;default:0"`
	SuppliedByID    uint            `json:"supplied_by" gorm:"column:supplied_by_id;not null;index"`
	SuppliedBy      *Supplier       `json:"-" gorm:"foreignKey:SuppliedByID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Revenue         decimal.Decimal `json:"revenue" gorm:"type:decimal(20,2);not null;default:0"`
	QuantitySold    int             `json:"quantity_sold" gorm:"not null;default:0"`
}

// ProductIn is the request body for creating a product. The supplier comes from the path.
type ProductIn struct {
	Name            string          `json:"name" validate:"required,max=255"`
	QuantityInStock int             `json:"quantity_in_stock" validate:"gte=0"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	QuantitySold    int             `json:"quantity_sold" validate:"gte=0"`
}

// ProductUpdate carries only the fields the caller set.
// QuantitySold is added to the stored value rather than replacing it.
type ProductUpdate struct {
	Name            *string          `json:"name" validate:"omitempty,max=255"`
	QuantityInStock *int             `json:"quantity_in_stock" validate:"omitempty,gte=0"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	SuppliedBy      *uint            `json:"supplied_by"`
	Revenue         *decimal.Decimal `json:"revenue"`
	QuantitySold    *int             `json:"quantity_sold" validate:"omitempty,gte=0"`
}

// AmountPlaces is the scale of every money column.
const AmountPlaces = 2

// Amount rounds d to the scale of a money column.
func Amount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// Revenue computes quantity sold times unit price, rounded to cents.
func Revenue(quantitySold int, unitPrice decimal.Decimal) decimal.Decimal {
	return Amount(unitPrice.Mul(decimal.NewFromInt(int64(quantitySold))))
}
