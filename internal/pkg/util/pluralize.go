package util

// Pluralize picks the Russian plural form for n out of
// [one, few, many], e.g. Pluralize(5, "стул", "стула", "стульев") == "стульев".
//
// Rules: form "one" when the last digit is 1 and the last two digits are
// not 11; form "few" when the last digit is 2..4 and the last two digits
// are outside 10..19; form "many" otherwise.
func Pluralize(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}

	digit := n % 10
	decs := n % 100

	switch {
	case digit == 1 && decs != 11:
		return one
	case digit >= 2 && digit <= 4 && (decs < 10 || decs >= 20):
		return few
	default:
		return many
	}
}
