package valueobjects

import "fmt"

// CardExpiry is a card expiry parsed from the gateway's 4-digit field.
type CardExpiry struct {
	month int
	year  int
}

// ParseCardExpiry parses the gateway's expiry field. The field is four digits
// with the year first: "2512" means December 2025 (year "25", month "12").
func ParseCardExpiry(s string) (CardExpiry, error) {
	if len(s) != 4 {
		return CardExpiry{}, fmt.Errorf("expiry must be 4 digits, got %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return CardExpiry{}, fmt.Errorf("expiry must be 4 digits, got %q", s)
		}
	}

	yy := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[2]-'0')*10 + int(s[3]-'0')
	if mm < 1 || mm > 12 {
		return CardExpiry{}, fmt.Errorf("invalid expiry month %02d in %q", mm, s)
	}

	return CardExpiry{
		month: mm,
		year:  2000 + yy,
	}, nil
}

func (e CardExpiry) Month() int {
	return e.month
}

func (e CardExpiry) Year() int {
	return e.year
}

func (e CardExpiry) IsZero() bool {
	return e == CardExpiry{}
}

// String formats the expiry as "YYYY-MM", e.g. "2025-12".
func (e CardExpiry) String() string {
	return fmt.Sprintf("%04d-%02d", e.year, e.month)
}
