package ordercache

import "time"

const (
	// keyGeneration holds the counter bumped by Invalidate.
	keyGeneration = "fastfeet:orders:generation"

	// keyPage is fastfeet:orders:{generation}:{page key}.
	keyPage = "fastfeet:orders:%d:%s"
)

// DefaultTTL bounds how long a page survives when nothing invalidates it.
const DefaultTTL = time.Minute
