package horizon

// Tier scales particle budgets to device capability, mirroring the
// per-device constants the presentation layer uses: fewer particles keep
// low-end terminals and mobile browsers at frame rate.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

var tierScale = map[Tier]float64{
	TierLow:    0.35,
	TierMedium: 0.6,
	TierHigh:   1.0,
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	}
	return "unknown"
}

// Budget scales a base particle count for the tier, never below 1.
func (t Tier) Budget(base int) int {
	scale, ok := tierScale[t]
	if !ok {
		scale = 1
	}
	n := int(float64(base) * scale)
	if n < 1 {
		n = 1
	}
	return n
}
