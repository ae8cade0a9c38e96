package gateway

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control session start times.
var timeNow = time.Now
