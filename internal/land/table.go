package land

// plotBreakpoint marks the level at which a new plot cap becomes available.
type plotBreakpoint struct {
	minLevel int
	plots    int
}

// plotTable maps player level to the maximum number of plots. Capacity only
// ever grows with level; levels between breakpoints keep the last cap.
var plotTable = []plotBreakpoint{
	{1, 4},
	{3, 5},
	{5, 6},
	{7, 7},
	{9, 8},
	{11, 9},
	{13, 10},
	{15, 11},
	{17, 12},
	{19, 13},
	{21, 14},
	{23, 15},
	{26, 16},
	{29, 17},
	{32, 18},
	{35, 19},
	{37, 20},
	{40, 21},
	{43, 22},
	{47, 23},
	{50, 24},
}

// MaxPlots is the cap reached at the top of the table.
const MaxPlots = 24

// UpgradeCostBase scales the quadratic plot cost curve.
const UpgradeCostBase = 200

// MaxPlotsForLevel returns the plot cap for the given level.
func MaxPlotsForLevel(level int) int {
	plots := plotTable[0].plots
	for _, bp := range plotTable {
		if level < bp.minLevel {
			break
		}
		plots = bp.plots
	}
	return plots
}

// UpgradeCost returns the gold price of unlocking plot number target.
func UpgradeCost(target int) int {
	n := target - 3
	return UpgradeCostBase * n * n
}
