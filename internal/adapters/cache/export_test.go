package cache

import "time"

func (c *PolicyCache) SetClock(now func() time.Time) { c.now = now }
