package cli

import "time"

// timeNow is a seam so tests can pin the clock for derived columns.
var timeNow = time.Now
