package brick

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickNormal   BrickType = iota // One hit
	BrickHard                      // Two hits
	BrickArmoured                  // Three hits
)

// HP returns the hits a brick of this type takes.
func (t BrickType) HP() int {
	switch t {
	case BrickHard:
		return 2
	case BrickArmoured:
		return 3
	default:
		return 1
	}
}

// Cell is one brick of a level.
type Cell struct {
	Col, Row int
	Type     BrickType
	Weight   int // Point multiplier for normal bricks
}

// Level is a brick layout parsed from an ASCII map.
type Level struct {
	ID     string
	Name   string
	Width  int // Columns
	Height int // Rows
	Cells  []Cell
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#'     = normal brick
//	'1'-'9' = normal brick worth digit times the base points
//	'H'     = hard brick (2 hits)
//	'X'     = armoured brick (3 hits)
//	'.'     = empty
func ParseLevel(id, name string, lines []string) *Level {
	level := &Level{ID: id, Name: name, Height: len(lines)}
	for _, line := range lines {
		level.Width = max(level.Width, len(line))
	}

	for row, line := range lines {
		for col := range len(line) {
			ch := line[col]
			c := Cell{Col: col, Row: row, Weight: 1}
			switch {
			case ch == '#':
			case ch >= '1' && ch <= '9':
				c.Weight = int(ch - '0')
			case ch == 'H' || ch == 'h':
				c.Type = BrickHard
			case ch == 'X' || ch == 'x':
				c.Type = BrickArmoured
			default:
				continue
			}
			level.Cells = append(level.Cells, c)
		}
	}
	return level
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		ParseLevel("classic", "Classic", []string{
			"####################",
			"####################",
			"####################",
			"####################",
			"####################",
		}),

		ParseLevel("pyramid", "Pyramid", []string{
			"........####........",
			"......########......",
			"....############....",
			"..################..",
			"####################",
		}),

		ParseLevel("checker", "Checkerboard", []string{
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
		}),

		ParseLevel("diamond", "Diamond", []string{
			".........##.........",
			"........####........",
			".......######.......",
			"......########......",
			".....##########.....",
			"......########......",
			".......######.......",
			"........####........",
			".........##.........",
		}),

		ParseLevel("fortress", "Fortress", []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H..................H",
			"H.################.H",
			"H.################.H",
			"H.################.H",
			"H..................H",
			"HHHHHHHHHHHHHHHHHHHH",
		}),

		ParseLevel("striped", "Striped", []string{
			"12345678987654321234",
			"....................",
			"####################",
			"....................",
			"####################",
			"....................",
			"####################",
		}),

		ParseLevel("invaders", "Invaders", []string{
			"..#..........#......",
			".###........###.....",
			"#####......#####....",
			"#.#.#......#.#.#....",
			"#####......#####....",
			"....................",
			"..#..........#......",
			".###........###.....",
			"#####......#####....",
			"#.#.#......#.#.#....",
			"#####......#####....",
		}),

		ParseLevel("heart", "Heart", []string{
			"..##....##..........",
			".####..####.........",
			"##############......",
			"##############......",
			".############.......",
			"..##########........",
			"...########.........",
			"....######..........",
			".....####...........",
			"......##............",
		}),

		ParseLevel("castle", "Castle", []string{
			"X..X....X..X....X..X",
			"XXXX....XXXX....XXXX",
			"X..X....X..X....X..X",
			"....................",
			"####################",
			"####################",
			"####################",
			"####################",
		}),

		ParseLevel("boss", "Final Boss", []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H##################H",
			"H##################H",
			"H##################H",
			"H##################H",
			"H##################H",
			"HHHHHHHHHHHHHHHHHHHH",
		}),
	}
}

// LevelByID returns a built-in level by its ID.
func LevelByID(id string) (*Level, bool) {
	for _, level := range BuiltinLevels() {
		if level.ID == id {
			return level, true
		}
	}
	return nil, false
}

// LevelIDs lists the built-in level ids in play order.
func LevelIDs() []string {
	levels := BuiltinLevels()
	ids := make([]string, len(levels))
	for i, l := range levels {
		ids[i] = l.ID
	}
	return ids
}
