package entities

import (
	"time"

	"docecalc/internal/domain/money"
)

// MeasurementUnit is the purchase/usage unit of an ingredient.
type MeasurementUnit string

const (
	UnitGram       MeasurementUnit = "g"
	UnitKilogram   MeasurementUnit = "kg"
	UnitMilliliter MeasurementUnit = "ml"
	UnitLiter      MeasurementUnit = "l"
	UnitPiece      MeasurementUnit = "unit"
)

func (u MeasurementUnit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitMilliliter, UnitLiter, UnitPiece:
		return true
	}
	return false
}

// Ingredient is a catalog entry owned by a single user (tenant).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// UnitPrice is the cost per Unit of measure, e.g. R$ 0,20 per gram.
type Ingredient struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Unit      MeasurementUnit `json:"unit"`
	UnitPrice money.Money     `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
