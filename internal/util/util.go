// Package util holds small generic helpers shared by the usecases.
package util

import (
	"fmt"
	"math"
	"time"
)

// Offset returns the number of items to skip before page, which is 1-based.
// It saturates at math.MaxInt instead of wrapping for absurd pages.
func Offset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}

	return (page - 1) * size
}

// MaxPage is the last page of size whose offset still fits in an int.
func MaxPage(size int) int {
	if size <= 1 {
		return math.MaxInt
	}

	return math.MaxInt/size + 1
}

// TotalPages returns how many pages of size are needed to hold total items.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}

	return (total + size - 1) / size
}

// Paginate returns the page-th slice of size items. Out-of-range pages yield an empty slice.
func Paginate[T any](items []T, page, size int) []T {
	start := Offset(page, size)
	if size < 1 || start < 0 || start >= len(items) {
		return []T{}
	}

	end := start + min(size, len(items)-start)

	return items[start:end]
}

// Distinct returns the distinct non-zero keys of items in first-seen order.
func Distinct[S any, K comparable](items []S, key func(S) K) []K {
	var zero K

	seen := make(map[K]struct{}, len(items))
	out := make([]K, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k == zero {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	return out
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
