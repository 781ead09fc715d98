package testutil

// Scenario is a grid fixture with its expected results.
type Scenario struct {
	Name       string
	Grid       string
	LoopLength int
	Farthest   int
	Interior   int
}

// ScenarioMinimal is the smallest loop that encloses a cell.
const ScenarioMinimal = `.....
.S-7.
.|.|.
.L-J.
.....
`

// ScenarioNoise is ScenarioMinimal surrounded by pipes that are not part of
// the loop.
const ScenarioNoise = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

// ScenarioComplex has a longer loop and junk tiles in every row.
const ScenarioComplex = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`

// ScenarioOpen has two interior pockets joined to the outside by a corridor.
const ScenarioOpen = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

// ScenarioSqueeze is ScenarioOpen with the corridor pinched shut. The
// ground between the adjacent pipes is still outside the loop.
const ScenarioSqueeze = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

// ScenarioLarge is a 20x10 grid with scattered interior cells.
const ScenarioLarge = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

// ScenarioDeadEnd has a start cell whose path runs into ground.
const ScenarioDeadEnd = `.....
.S-7.
.|.|.
.L-..
.....
`

// ScenarioTight is the smallest possible loop, with nothing inside it.
const ScenarioTight = `.S7
.LJ
`

// Scenarios returns every solvable fixture.
// Returns a new slice each time to prevent test interference.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "minimal", Grid: ScenarioMinimal, LoopLength: 8, Farthest: 4, Interior: 1},
		{Name: "noise", Grid: ScenarioNoise, LoopLength: 8, Farthest: 4, Interior: 1},
		{Name: "complex", Grid: ScenarioComplex, LoopLength: 16, Farthest: 8, Interior: 1},
		{Name: "open", Grid: ScenarioOpen, LoopLength: 46, Farthest: 23, Interior: 4},
		{Name: "squeeze", Grid: ScenarioSqueeze, LoopLength: 44, Farthest: 22, Interior: 4},
		{Name: "large", Grid: ScenarioLarge, LoopLength: 140, Farthest: 70, Interior: 8},
		{Name: "tight", Grid: ScenarioTight, LoopLength: 4, Farthest: 2, Interior: 0},
	}
}
