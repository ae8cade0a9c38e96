package export

import "time"

// timeNow is a package-level variable for testability.
// Same pattern as gateway/time.go.
var timeNow = time.Now
