package achievements

var (
	poolNoStreak = []string{
		"Start your streak today!",
		"Every small step counts",
		"The perfect moment to begin!",
		"Your first streak is waiting for you!",
	}
	poolStarting = []string{
		"You're on the right track!",
		"Keep it up, you're on a streak!",
		"Two days in a row, impressive!",
		"Consistency is your ally!",
	}
	poolRolling = []string{
		"You're unstoppable!",
		"Keep the pace!",
		"You're on fire!",
		"Your dedication shows!",
	}
	poolChampion = []string{
		"Productivity champion!",
		"You're a machine!",
		"A legend in action!",
		"Your streak is inspiring!",
	}
	poolTitan = []string{
		"You're a titan!",
		"Legendary streak!",
		"Unstoppable like a hurricane!",
		"Your perseverance is admirable!",
	}
	poolImmortal = []string{
		"God of productivity!",
		"Immortal streak!",
		"You're a living legend!",
		"Your dedication has no limits!",
	}
)

// MotivationalPool returns every message of the bucket the streak falls in.
// Buckets: 0, 1-2, 3-6, 7-14, 15-29, 30+.
func MotivationalPool(streak int) []string {
	var pool []string
	switch {
	case streak <= 0:
		pool = poolNoStreak
	case streak <= 2:
		pool = poolStarting
	case streak <= 6:
		pool = poolRolling
	case streak <= 14:
		pool = poolChampion
	case streak <= 29:
		pool = poolTitan
	default:
		pool = poolImmortal
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}
