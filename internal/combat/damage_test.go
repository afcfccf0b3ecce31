package combat

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestDamage(t *testing.T) {
	tests := map[string]struct {
		level, weaponPower, armor, variance int
		exp                                 int
	}{
		"deterministic with zero variance": {5, 10, 20, 0, 30},
		"variance adds":                    {5, 10, 20, 4, 34},
		"heavy armor clamps to zero":       {5, 10, 1000, 0, 0},
		"armor clamps even with variance":  {1, 1, 100, 5, 0},
		"unarmored":                        {2, 5, 0, 0, 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Damage(tt.level, tt.weaponPower, tt.armor, tt.variance)
			testutil.AssertEqual(t, "damage", got, tt.exp)
		})
	}
}

func TestHitChance(t *testing.T) {
	tests := map[string]struct {
		stamina int
		exp     float64
	}{
		"full stamina":         {45, 0.9},
		"at threshold":         {10, 0.9},
		"half threshold":       {5, 0.45},
		"exhausted hits floor": {0, 0.25},
		"one stamina floors":   {1, 0.25},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "hit chance", HitChance(tt.stamina), tt.exp)
		})
	}
}

func TestDamageVerb(t *testing.T) {
	testutil.AssertEqual(t, "miss", DamageVerb(0), "misses")
	testutil.AssertEqual(t, "scratch", DamageVerb(3), "scratches")
	testutil.AssertEqual(t, "huge", DamageVerb(500), "obliterates")
}
