package field

import (
	"strconv"
	"time"
)

// TimestampedName returns prefix_<unix seconds>suffix, e.g. output_1700000000.png.
func TimestampedName(prefix, suffix string, t time.Time) string {
	return prefix + "_" + strconv.FormatInt(t.Unix(), 10) + suffix
}
