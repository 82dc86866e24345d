package domain

// Percentage returns num/den*100. An unset numerator stays unset; a zero or
// unset denominator yields 0.
func Percentage(num, den NullFloat64) NullFloat64 {
	if !num.Valid {
		return NullFloat64{}
	}
	if !den.Valid || den.Float64 == 0 {
		return FloatOf(0)
	}
	return FloatOf(num.Float64 / den.Float64 * 100)
}
