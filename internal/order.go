package internal

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// OrderInput is the body of POST /orders. Price is kept raw until Validate so
// that "missing" and "not a number" can be told apart.
type OrderInput struct {
	Name    string     `json:"name" form:"name"`
	Email   string     `json:"email" form:"email"`
	Product string     `json:"product" form:"product"`
	Price   PriceField `json:"price" form:"price"`
}

// PriceField accepts a JSON number or a numeric string.
type PriceField struct {
	Raw string
	Set bool
}

func (p *PriceField) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*p = PriceField{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = str
	}
	return p.UnmarshalText([]byte(s))
}

func (p *PriceField) UnmarshalText(b []byte) error {
	p.Raw = strings.TrimSpace(string(b))
	p.Set = p.Raw != ""
	return nil
}

// ValidOrder is an OrderInput that passed Validate.
type ValidOrder struct {
	Name    string
	Email   string
	Product string
	Price   decimal.Decimal
}

func (i OrderInput) Validate() (ValidOrder, error) {
	name, email, product := strings.TrimSpace(i.Name), strings.TrimSpace(i.Email), strings.TrimSpace(i.Product)
	if name == "" || email == "" || product == "" || !i.Price.Set {
		return ValidOrder{}, ErrFieldsRequired
	}

	price, err := decimal.NewFromString(i.Price.Raw)
	if err != nil {
		return ValidOrder{}, ErrPriceNotNumber
	}
	if price.IsNegative() {
		return ValidOrder{}, ErrPriceNegative
	}
	// the charged amount is an int64 of minor units
	if !price.Mul(hundred).Round(0).BigInt().IsInt64() {
		return ValidOrder{}, ErrPriceTooLarge
	}

	return ValidOrder{Name: name, Email: email, Product: product, Price: price}, nil
}

// MinorUnits converts a major-unit price to the integer amount a payment
// provider charges, rounding half away from zero.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(hundred).Round(0).IntPart()
}
