package utils

import "github.com/ILkUVayne/utlis-go/v2/time"

// SinceMs returns the milliseconds elapsed since start, a time.GetMsTime
// reading.
func SinceMs(start int64) int64 {
	return time.GetMsTime() - start
}
