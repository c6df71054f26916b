package transfernotify

import "time"

// Clock supplies the current instant. Injecting one keeps expiration
// computation testable; the default is time.Now.
type Clock func() time.Time
