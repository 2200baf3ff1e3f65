package kernel_test

import "time"

func fixedTime() time.Time {
	return time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
}
