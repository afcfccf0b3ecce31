package combat

const (
	// DefaultVariance bounds the random component added to each strike.
	DefaultVariance = 5

	// StaminaCostPerRound is drained from both sides every resolution.
	StaminaCostPerRound = 1

	// LowStaminaThreshold is where exhaustion starts degrading hit chance.
	LowStaminaThreshold = 10

	baseHitChance = 0.9
	minHitChance  = 0.25
)

// Damage computes the damage of one strike: attacker level times weapon
// power, reduced by defender armor, plus the caller's variance draw,
// clamped at zero. With a zero draw the result is deterministic.
func Damage(level, weaponPower, armor, variance int) int {
	dmg := level*weaponPower - armor + variance
	if dmg < 0 {
		return 0
	}
	return dmg
}

// HitChance returns the probability a strike lands. Insufficient stamina
// degrades accuracy rather than blocking the attack outright.
func HitChance(stamina int) float64 {
	if stamina >= LowStaminaThreshold {
		return baseHitChance
	}
	chance := baseHitChance * float64(stamina) / float64(LowStaminaThreshold)
	if chance < minHitChance {
		return minHitChance
	}
	return chance
}

var damageVerbs = []struct {
	maxDamage int
	verb      string
}{
	{0, "misses"},
	{5, "scratches"},
	{15, "hits"},
	{30, "hits hard"},
	{50, "pummels"},
	{80, "mauls"},
	{120, "devastates"},
}

// DamageVerb returns the third-person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, v := range damageVerbs {
		if damage <= v.maxDamage {
			return v.verb
		}
	}
	return "obliterates"
}
