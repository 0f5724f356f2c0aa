package catalog

import "strconv"

// Radial extracts the rim-diameter component of a tire size string: the
// first run of decimal digits immediately following an "R" or "r".
// "205/55R16" -> 16, "11R22.5" -> 22. Returns 0 when no such run exists.
func Radial(size string) int {
	for i := 0; i < len(size); i++ {
		if size[i] != 'R' && size[i] != 'r' {
			continue
		}
		j := i + 1
		for j < len(size) && size[j] >= '0' && size[j] <= '9' {
			j++
		}
		if j == i+1 {
			continue
		}
		n, err := strconv.Atoi(size[i+1 : j])
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
