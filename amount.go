package ledgerfmt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a quantity of a commodity as written in a posting.
type Amount struct {
	Quantity  decimal.Decimal
	Commodity string // "$", "EUR", or "" for a bare number
}

var amountRegexp = regexp.MustCompile(`^(-?)\s*([^\d\s.,+-]*)\s*([+-]?[\d,]*\.?\d+)\s*([^\d\s.,+-]*)$`)

// symbols maps the usual currency signs to their ISO code.
var symbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
}

// ParseAmount parses the amount part of a posting. A trailing comment, a
// price ("@ ...") or a balance assertion ("= ...") is ignored.
func ParseAmount(s string) (Amount, error) {
	raw := s
	if i := strings.IndexAny(s, ";@="); i >= 0 {
		s = s[:i]
	}
	m := amountRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Amount{}, fmt.Errorf("invalid amount %q", raw)
	}
	if m[2] != "" && m[4] != "" {
		return Amount{}, fmt.Errorf("invalid amount %q: two commodities", raw)
	}
	q, err := decimal.NewFromString(plainNumber(m[3]))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if m[1] == "-" {
		q = q.Neg()
	}
	return Amount{Quantity: q, Commodity: m[2] + m[4]}, nil
}

// plainNumber removes the thousands separators of n. A single comma followed
// by two digits and no point is a decimal comma ("3,50").
func plainNumber(n string) string {
	if i := strings.IndexByte(n, ','); i >= 0 && i == len(n)-3 && !strings.Contains(n, ".") && strings.Count(n, ",") == 1 {
		return n[:i] + "." + n[i+1:]
	}
	return strings.ReplaceAll(n, ",", "")
}

// currency returns the money currency for the commodity, or nil when it is
// not a known currency.
func (a Amount) currency() *money.Currency {
	code := a.Commodity
	if iso, ok := symbols[code]; ok {
		code = iso
	}
	if code == "" || strings.ToUpper(code) != code {
		return nil
	}
	return money.GetCurrency(code)
}

// Add returns a+b. Both must be of the same commodity.
func (a Amount) Add(b Amount) Amount {
	return Amount{Quantity: a.Quantity.Add(b.Quantity), Commodity: a.Commodity}
}

// String formats currencies the usual way ("$1,000.50") and other
// commodities as the quantity followed by the commodity.
func (a Amount) String() string {
	if cur := a.currency(); cur != nil {
		dec := a.Quantity.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
		return cur.Formatter().Format(dec.IntPart())
	}
	if a.Commodity == "" {
		return a.Quantity.String()
	}
	return a.Quantity.String() + " " + a.Commodity
}
