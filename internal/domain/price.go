package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price is an optional amount of gold pieces. The zero value is an absent price.
type Price struct {
	gp    float64
	valid bool
}

// PriceOf returns a present price. Negative and non-finite amounts are absent.
func PriceOf(gp float64) Price {
	if math.IsNaN(gp) || math.IsInf(gp, 0) || gp < 0 {
		return Price{}
	}
	return Price{gp: gp, valid: true}
}

// ParsePrice reads a gold amount such as "1.5". Unparseable input is absent.
func ParsePrice(s string) Price {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Price{}
	}
	return PriceOf(v)
}

// GP returns the amount and whether it is present.
func (p Price) GP() (float64, bool) {
	return p.gp, p.valid
}

// OrZero returns the amount, or 0 when the price is absent.
func (p Price) OrZero() float64 {
	if !p.valid {
		return 0
	}
	return p.gp
}

// IsSet reports whether the price is present.
func (p Price) IsSet() bool {
	return p.valid
}

// MarshalJSON writes the amount, or null when absent.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.gp)
}

// UnmarshalJSON accepts a number, a numeric string or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ParsePrice(s)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// Objects and other shapes carry no usable price
		*p = Price{}
		return nil
	}
	*p = PriceOf(v)
	return nil
}
