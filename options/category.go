package options

type CategoryEnum int

const (
	CategoryText       CategoryEnum = 1 << iota // string
	CategoryBool                                // bool
	CategoryInteger                             // int32
	CategoryFloat                               // float64
	CategoryDecimal                             // decimal.Decimal: fixed-point decimal
	CategoryTemporal                            // time.Time: date and time
	CategoryIdentifier                          // uuid.UUID: universally unique identifier
	CategoryNullable                            // pointer variant of any of the above, nil means absent

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected
)

// Allows reports whether every category bit of required is enabled in c.
func (c CategoryEnum) Allows(required CategoryEnum) bool {
	return required != CategoryNone && c&required == required
}
