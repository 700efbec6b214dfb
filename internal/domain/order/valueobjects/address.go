package valueobjects

// Address is a postal address as the order store records it. Country is an
// ISO 3166-1 alpha-2 code.
type Address struct {
	Line1    string
	Line2    string
	City     string
	Postcode string
	Country  string
}

func (a Address) IsZero() bool {
	return a == Address{}
}
