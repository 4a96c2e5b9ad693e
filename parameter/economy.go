package parameter

// Demo economy starting balance
const (
	StartCoin  = 120.0
	StartMana  = 24.0
	StartFavor = 16.0
)

// Demo economy base income per second, scaled by unlocked resource multipliers
const (
	IncomeCoin  = 3.0
	IncomeMana  = 0.6
	IncomeFavor = 0.4
)

// Unlock request queue
const (
	// RequestQueueSize must be a power of two
	RequestQueueSize = 64
	RequestQueueMask = RequestQueueSize - 1
)
