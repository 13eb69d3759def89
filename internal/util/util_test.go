package util

import (
	"math"
	"slices"
	"strconv"
	"testing"
	"time"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name     string
		page     int
		size     int
		expected []int
	}{
		{name: "first page", page: 1, size: 9, expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "second page", page: 2, size: 9, expected: []int{9, 10, 11, 12, 13, 14, 15, 16, 17}},
		{name: "short last page", page: 3, size: 9, expected: []int{18, 19}},
		{name: "past the end", page: 4, size: 9, expected: []int{}},
		{name: "zero size", page: 1, size: 0, expected: []int{}},
		{name: "page far past the end", page: 2_000_000_000_000_000_000, size: 9, expected: []int{}},
		{name: "largest page", page: math.MaxInt, size: math.MaxInt, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Paginate(items, tt.page, tt.size)
			if !slices.Equal(got, tt.expected) {
				t.Fatalf("Paginate(page=%d, size=%d) = %v, want %v", tt.page, tt.size, got, tt.expected)
			}
			if len(got) > tt.size && tt.size > 0 {
				t.Fatalf("page holds %d items, more than size %d", len(got), tt.size)
			}
		})
	}
}

func TestOffsetAndTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, size, total  int
		wantOffset, wantTP int
	}{
		{page: 1, size: 9, total: 0, wantOffset: 0, wantTP: 0},
		{page: 2, size: 9, total: 9, wantOffset: 9, wantTP: 1},
		{page: 3, size: 5, total: 11, wantOffset: 10, wantTP: 3},
		{page: 0, size: 5, total: 10, wantOffset: 0, wantTP: 2},
		{page: 2_000_000_000_000_000_000, size: 9, total: 10, wantOffset: math.MaxInt, wantTP: 2},
	}

	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()

			if got := Offset(tt.page, tt.size); got != tt.wantOffset {
				t.Fatalf("Offset(%d, %d) = %d, want %d", tt.page, tt.size, got, tt.wantOffset)
			}
			if got := TotalPages(tt.total, tt.size); got != tt.wantTP {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.wantTP)
			}
		})
	}
}

func TestDistinct(t *testing.T) {
	t.Parallel()

	type item struct{ brand string }
	items := []item{{"Acme"}, {"Zen"}, {""}, {"Acme"}, {"Orb"}}

	got := Distinct(items, func(i item) string { return i.brand })
	want := []string{"Acme", "Zen", "Orb"}
	if !slices.Equal(got, want) {
		t.Fatalf("Distinct = %v, want %v", got, want)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestMaxPage(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 9, 60, math.MaxInt} {
		last := MaxPage(size)
		if last < 1 {
			t.Fatalf("MaxPage(%d) = %d, want a positive page", size, last)
		}
		if size > 0 && Offset(last, size) != (last-1)*size {
			t.Fatalf("Offset(MaxPage(%d)) saturated, the last page must still fit", size)
		}
	}
}
