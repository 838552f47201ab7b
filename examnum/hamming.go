package examnum

// HammingDistance returns the number of character positions at which a and b
// differ. Strings of different lengths are compared only over the length of
// the shorter one; the remaining characters of the longer string are ignored.
func HammingDistance(a string, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(br) < len(ar) {
		ar, br = br, ar
	}

	var distance int
	for i := range ar {
		if ar[i] != br[i] {
			distance++
		}
	}
	return distance
}
