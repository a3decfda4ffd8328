package util

import (
	"testing"
	"time"
)

func TestIDSource_Next(t *testing.T) {
	t.Run("uses the clock in milliseconds", func(t *testing.T) {
		now := time.UnixMilli(1700000000123)
		src := NewIDSourceWithClock(func() time.Time { return now })

		if got := src.Next(); got != 1700000000123 {
			t.Errorf("Next() = %d, want %d", got, int64(1700000000123))
		}
	})

	t.Run("same millisecond is strictly increasing", func(t *testing.T) {
		now := time.UnixMilli(5000)
		src := NewIDSourceWithClock(func() time.Time { return now })

		prev := src.Next()
		for i := 0; i < 100; i++ {
			id := src.Next()
			if id <= prev {
				t.Fatalf("id %d not greater than previous %d", id, prev)
			}
			prev = id
		}
		if prev != 5100 {
			t.Errorf("expected last id 5100, got %d", prev)
		}
	})

	t.Run("clock moving backwards keeps ids increasing", func(t *testing.T) {
		times := []int64{1000, 900, 800, 2000}
		i := 0
		src := NewIDSourceWithClock(func() time.Time {
			ts := time.UnixMilli(times[i])
			i++
			return ts
		})

		want := []int64{1000, 1001, 1002, 2000}
		for _, w := range want {
			if got := src.Next(); got != w {
				t.Errorf("Next() = %d, want %d", got, w)
			}
		}
	})

	t.Run("generates unique IDs from the wall clock", func(t *testing.T) {
		src := NewIDSource()
		seen := make(map[int64]bool)
		for i := 0; i < 1000; i++ {
			id := src.Next()
			if seen[id] {
				t.Errorf("duplicate id generated: %d", id)
			}
			seen[id] = true
		}
	})
}

func TestIDSource_Last(t *testing.T) {
	src := NewIDSourceWithClock(func() time.Time { return time.UnixMilli(42) })
	if src.Last() != 0 {
		t.Errorf("expected Last() = 0 before any id, got %d", src.Last())
	}
	id := src.Next()
	if src.Last() != id {
		t.Errorf("Last() = %d, want %d", src.Last(), id)
	}
}
