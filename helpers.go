package scheduler

import "time"

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

func laterOf(a, b time.Time) time.Time {
	return ternary(a.After(b), a, b)
}

func earlierOf(a, b time.Time) time.Time {
	return ternary(a.Before(b), a, b)
}
