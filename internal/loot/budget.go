package loot

// perCharacterBudgetByLevel holds the gold budget for one character, indexed
// by level - 1.
var perCharacterBudgetByLevel = [MaxTabulatedLevel]float64{
	40,   // 1
	70,   // 2
	120,  // 3
	200,  // 4
	320,  // 5
	480,  // 6
	640,  // 7
	850,  // 8
	1000, // 9
	1250, // 10
}

// PerCharacterBudget returns the gold budget for one character of the given
// party level. Levels below 1 are treated as level 1; levels past the table
// grow linearly.
func PerCharacterBudget(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level <= MaxTabulatedLevel {
		return perCharacterBudgetByLevel[level-1]
	}
	top := perCharacterBudgetByLevel[MaxTabulatedLevel-1]
	return top + BudgetPerLevelAboveTable*float64(level-MaxTabulatedLevel)
}

// PartyBudget is the per-character budget multiplied by the party size.
// A party smaller than one counts as one character.
func PartyBudget(level, partySize int) float64 {
	if partySize < 1 {
		partySize = 1
	}
	return PerCharacterBudget(level) * float64(partySize)
}
