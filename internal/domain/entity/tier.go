package entity

import "math"

// Tier classifies workers and hotels by cumulative completed-shift hours.
type Tier string

const (
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

// Tier thresholds in hours. Only the minimums decide the tier; the maximums are descriptive.
const (
	SilverMinHours   = 0
	SilverMaxHours   = 50
	GoldMinHours     = 51
	GoldMaxHours     = 200
	PlatinumMinHours = 201
)

// CalculateTier derives the tier for a total number of completed hours,
// testing the minimums from the highest tier down.
func CalculateTier(totalHours float64) Tier {
	switch {
	case totalHours >= PlatinumMinHours:
		return TierPlatinum
	case totalHours >= GoldMinHours:
		return TierGold
	default:
		return TierSilver
	}
}

// String returns the string representation of the Tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the Tier is a known value.
func (t Tier) IsValid() bool {
	switch t {
	case TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

// MinHours is the inclusive lower bound of the tier. Unknown tiers rank as SILVER.
func (t Tier) MinHours() float64 {
	switch t {
	case TierPlatinum:
		return PlatinumMinHours
	case TierGold:
		return GoldMinHours
	default:
		return SilverMinHours
	}
}

// MaxHours is the descriptive upper bound of the tier; ok is false for the open-ended top tier.
func (t Tier) MaxHours() (hours float64, ok bool) {
	switch t {
	case TierPlatinum:
		return 0, false
	case TierGold:
		return GoldMaxHours, true
	default:
		return SilverMaxHours, true
	}
}

// Next returns the tier above t; ok is false at the top.
func (t Tier) Next() (next Tier, ok bool) {
	switch t {
	case TierPlatinum:
		return "", false
	case TierGold:
		return TierPlatinum, true
	default:
		return TierGold, true
	}
}

// IsPromotion reports whether moving from prev to next is a move up.
// Tiers are ordered by their minimum hours, so a changed label with a lower
// minimum is a demotion and reports false.
func IsPromotion(prev, next Tier) bool {
	return prev != next && next.MinHours() > prev.MinHours()
}

// TierProgress describes where a total sits relative to the next tier.
type TierProgress struct {
	Tier        Tier    `json:"tier"`
	NextTier    *Tier   `json:"nextTier"`    // nil at the top tier
	TotalHours  float64 `json:"totalHours"`  // hours counted so far
	HoursToNext float64 `json:"hoursToNext"` // 0 at the top tier
	Progress    float64 `json:"progress"`    // percentage of the current tier's band covered, 0-100
}

// TierProgressFor computes progress towards the next tier. Progress is measured
// across the current tier's band, from its minimum to the next tier's minimum,
// so a worker who just reached GOLD is at 0%.
func TierProgressFor(totalHours float64) TierProgress {
	current := CalculateTier(totalHours)
	progress := TierProgress{
		Tier:       current,
		TotalHours: totalHours,
	}

	next, ok := current.Next()
	if !ok {
		progress.Progress = 100

		return progress
	}

	floor, target := current.MinHours(), next.MinHours()
	progress.NextTier = &next
	progress.HoursToNext = math.Max(target-totalHours, 0)
	if covered := totalHours - floor; covered > 0 {
		progress.Progress = math.Round(covered/(target-floor)*100*100) / 100
	}

	return progress
}
