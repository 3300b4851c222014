package library

import (
	"fmt"
	"regexp"
	"strconv"
)

var sizePattern = regexp.MustCompile(`(\d+\.?\d*)\s*(KB|MB)`)

// ParseSizeKB reads a "45 KB" / "2.5 MB" style size as kilobytes.
func ParseSizeKB(s string) (float64, bool) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] == "MB" {
		n *= 1024
	}
	return n, true
}

// FormatSizeKB renders a kilobyte total, switching to MB from 1024 KB up.
func FormatSizeKB(kb float64) string {
	if kb < 1024 {
		return fmt.Sprintf("%.0f KB", kb)
	}
	return fmt.Sprintf("%.1f MB", kb/1024)
}

// ComputeStats counts every element of the catalog and sums the sizes that
// can be parsed, whether or not the element is later displayed.
func ComputeStats(raws []Raw) Stats {
	var total float64
	for _, raw := range raws {
		s, _ := text(raw, "size")
		if kb, ok := ParseSizeKB(s); ok {
			total += kb
		}
	}
	return Stats{
		Total:       len(raws),
		TotalSizeKB: total,
		TotalSize:   FormatSizeKB(total),
	}
}
