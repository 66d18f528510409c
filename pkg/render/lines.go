package render

import (
	"strconv"
	"strings"
)

// parseLinesSpec parses a lines specification such as "1-10" or
// "1,3,5-7" into 0-based indices. Numbers are 1-based inclusive;
// out-of-range values are dropped.
func parseLinesSpec(spec string, total int) []int {
	var result []int

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)

		if before, after, found := strings.Cut(part, "-"); found {
			start, err1 := strconv.Atoi(strings.TrimSpace(before))
			end, err2 := strconv.Atoi(strings.TrimSpace(after))
			if err1 != nil || err2 != nil {
				continue
			}
			for i := start; i <= end; i++ {
				if i > 0 && i <= total {
					result = append(result, i-1)
				}
			}
			continue
		}

		if n, err := strconv.Atoi(part); err == nil && n > 0 && n <= total {
			result = append(result, n-1)
		}
	}

	return result
}
