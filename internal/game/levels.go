package game

// RankSpec describes one experience rank. Stamina doubles as the base
// pool for both health and fatigue at that rank.
type RankSpec struct {
	Threshold int
	Name      string
	Stamina   int
	Strength  int
	Dexterity int
}

// rankTable lists ranks in ascending point order. Thresholds double at
// each step.
var rankTable = []RankSpec{
	{0, "Neophyte", 45, 45, 45},
	{400, "Novice", 50, 50, 50},
	{800, "Acolyte", 55, 55, 55},
	{1600, "Scholar", 60, 60, 60},
	{3200, "Magister", 65, 65, 65},
	{6400, "Archon", 70, 70, 70},
	{12800, "Warlock", 75, 75, 75},
	{25600, "Guardian", 80, 80, 80},
	{51200, "Sovereign", 85, 85, 85},
	{102400, "Archmage", 100, 100, 100},
}

// RankIndexFor returns the 0-based index of the highest rank whose
// threshold the given points total meets.
func RankIndexFor(points int) int {
	idx := 0
	for i, r := range rankTable {
		if points >= r.Threshold {
			idx = i
		} else {
			break
		}
	}
	return idx
}

// RankFor returns the rank spec for the given points total.
func RankFor(points int) RankSpec {
	return rankTable[RankIndexFor(points)]
}

// NextRankAt returns the points needed for the next rank, or -1 at the top.
func NextRankAt(points int) int {
	idx := RankIndexFor(points)
	if idx+1 >= len(rankTable) {
		return -1
	}
	return rankTable[idx+1].Threshold
}
