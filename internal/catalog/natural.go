package catalog

// NaturalLess compares two strings with digit runs ordered numerically and
// everything else case-insensitively, so "16" sorts before "100" and
// "7.00R15" before "11R22.5". Tire sizes are short ASCII strings; a byte
// walk is enough.
func NaturalLess(a, b string) bool {
	return naturalCompare(a, b) < 0
}

func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na, nb := trimZeros(a[si:i]), trimZeros(b[sj:j])
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			for k := 0; k < len(na); k++ {
				if na[k] != nb[k] {
					return int(na[k]) - int(nb[k])
				}
			}
			continue
		}
		la, lb := foldByte(ca), foldByte(cb)
		if la != lb {
			return int(la) - int(lb)
		}
		i++
		j++
	}
	return (len(a) - i) - (len(b) - j)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
