package spooky

import "fmt"

// Config is a Game's frozen-for-its-lifetime configuration, mirroring
// robot.go's Config struct (BoardSize, SampleCount, Randomness, Log)
// generalized to the rules engine's own knobs.
type Config struct {
	Width              int
	Height             int
	Komi               float64
	MinMovesBeforePass int
	MaxMoves           int
	Superko            bool
}

// DefaultConfig fills in sensible defaults for a board of the given
// size: komi 7.5, pass allowed once half the board could plausibly be
// filled, a move cap of twice the board's cell count, simple ko only.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:              width,
		Height:             height,
		Komi:               7.5,
		MinMovesBeforePass: (width * height) / 2,
		MaxMoves:           2 * width * height,
		Superko:            false,
	}
}

// Game orchestrates Board, groupTable, the zobrist hash, and
// historyStack in lock-step. It is single-owner and not safe for
// concurrent use by multiple goroutines; independent Games may run
// concurrently without contention since the zobrist key table is
// immutable.
type Game struct {
	config  Config
	board   *Board
	groups  *groupTable
	hash    uint64
	turn    Color
	koPoint int // -1 means unset
	passes  int
	moves   int

	history    *historyStack
	seenHashes map[uint64]int
}

// NewGame constructs a Game with DefaultConfig's defaults.
func NewGame(width, height int) (*Game, error) {
	return NewGameWithConfig(DefaultConfig(width, height))
}

// Standard constructs a 19x19 Game with default options.
func Standard() (*Game, error) {
	return NewGame(19, 19)
}

// NewGameWithOptions constructs a Game overriding every default.
func NewGameWithOptions(width, height int, komi float64, minMovesBeforePass, maxMoves int, superko bool) (*Game, error) {
	return NewGameWithConfig(Config{
		Width:              width,
		Height:             height,
		Komi:               komi,
		MinMovesBeforePass: minMovesBeforePass,
		MaxMoves:           maxMoves,
		Superko:            superko,
	})
}

// NewGameWithConfig is the common constructor behind NewGame and
// NewGameWithOptions.
func NewGameWithConfig(cfg Config) (*Game, error) {
	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Game{
		config:     cfg,
		board:      board,
		groups:     newGroupTable(cfg.Width, cfg.Height),
		hash:       0,
		turn:       Black,
		koPoint:    -1,
		passes:     0,
		moves:      0,
		history:    newHistoryStack(),
		seenHashes: map[uint64]int{0: 1},
	}, nil
}

func (g *Game) Width() int    { return g.board.width }
func (g *Game) Height() int   { return g.board.height }
func (g *Game) Turn() Color   { return g.turn }
func (g *Game) Komi() float64 { return g.config.Komi }
func (g *Game) MinMovesBeforePass() int { return g.config.MinMovesBeforePass }
func (g *Game) MoveCount() int { return g.moves }

// Board returns a read-only snapshot of the current position. Mutating
// it has no effect on the Game; Game never mutates a Board it has
// handed out.
func (g *Game) Board() *Board { return g.board.clone() }

// KoPoint reports the simple-ko point, if any.
func (g *Game) KoPoint() (Move, bool) {
	if g.koPoint < 0 {
		return Move{}, false
	}
	col, row := g.board.colRow(g.koPoint)
	return Place(col, row), true
}

func (g *Game) IsOver() bool {
	return g.passes >= 2 || g.moves >= g.config.MaxMoves
}

// Outcome returns the game's outcome and true iff the game is over.
func (g *Game) Outcome() (GameOutcome, bool) {
	if !g.IsOver() {
		return GameOutcome{}, false
	}
	black, white := Score(g.board, g.config.Komi)
	return NewOutcome(black, white), true
}

// Score returns (blackScore, whiteScore) under area scoring with komi.
func (g *Game) Score() (float64, float64) {
	return Score(g.board, g.config.Komi)
}

func (g *Game) TotalActions() int { return TotalActions(g.board.width, g.board.height) }

func (g *Game) DecodeAction(action int) (Move, error) {
	return DecodeAction(action, g.board.width, g.board.height)
}

// MakeMove attempts to play m for the current side to move. It returns
// false (never an error) for any rule violation; a failed attempt
// leaves the Game byte-identical to its pre-call state.
func (g *Game) MakeMove(m Move) bool {
	if g.IsOver() {
		return false
	}
	if m.IsPass() {
		return g.makePass()
	}
	return g.attemptPlace(m.Col(), m.Row(), true)
}

// IsLegalMove reports whether m would be accepted by MakeMove right
// now — except for one deliberate asymmetry: a pass that would
// recreate a prior superko position is excluded from
// LegalMoves/IsLegalMove, even though MakeMove itself never rejects a
// pass on superko grounds. See DESIGN.md.
func (g *Game) IsLegalMove(m Move) bool {
	if g.IsOver() {
		return false
	}
	if m.IsPass() {
		return g.passIsLegal()
	}
	col, row := m.Col(), m.Row()
	if col < 0 || col >= g.board.width || row < 0 || row >= g.board.height {
		return false
	}
	return g.attemptPlace(col, row, false)
}

// LegalMoves returns every legal move in row-major cell order, with
// Pass last if applicable.
func (g *Game) LegalMoves() []Move {
	if g.IsOver() {
		return nil
	}
	var moves []Move
	for idx := 0; idx < g.board.width*g.board.height; idx++ {
		col, row := g.board.colRow(idx)
		if g.attemptPlace(col, row, false) {
			moves = append(moves, Place(col, row))
		}
	}
	if g.passIsLegal() {
		moves = append(moves, PassMove())
	}
	return moves
}

func (g *Game) passIsLegal() bool {
	if g.moves < g.config.MinMovesBeforePass {
		return false
	}
	if !g.config.Superko {
		return true
	}
	afterPass := g.hash ^ zobrist().side()
	return g.seenHashes[afterPass] == 0
}

func (g *Game) makePass() bool {
	if g.moves < g.config.MinMovesBeforePass {
		return false
	}
	mover := g.turn
	priorKo := g.koPoint
	priorPasses := g.passes
	priorHash := g.hash

	newHash := g.hash ^ zobrist().side()

	g.koPoint = -1
	g.passes++
	g.hash = newHash
	g.turn = mover.Opposite()
	g.moves++

	g.history.push(moveRecord{
		move:         PassMove(),
		player:       mover,
		priorKoPoint: priorKo,
		priorPasses:  priorPasses,
		priorHash:    priorHash,
		resultHash:   newHash,
	})
	g.seenHashes[newHash]++
	return true
}

// attemptPlace runs the full simulation of placing a stone: bounds,
// emptiness, ko, capture, suicide, and (when enabled) superko. With
// commit=false it always reverts its own mutation before returning,
// making it safe to use as the precise legality test behind
// IsLegalMove/LegalMoves; with commit=true a legal move is finalized
// (turn flip, history, superko bookkeeping) exactly as MakeMove needs.
func (g *Game) attemptPlace(col, row int, commit bool) bool {
	if col < 0 || col >= g.board.width || row < 0 || row >= g.board.height {
		return false
	}
	idx := g.board.index(col, row)
	if g.board.cells[idx] != Empty {
		return false
	}
	if idx == g.koPoint {
		return false
	}

	mover := g.turn
	priorKo := g.koPoint
	priorPasses := g.passes
	priorHash := g.hash

	g.board.cells[idx] = mover
	captured := g.groups.place(col, row, mover)
	for _, cidx := range captured {
		ccol, crow := g.board.colRow(cidx)
		g.board.cells[cidx] = Empty
		g.groups.remove(ccol, crow)
	}

	ownLiberties := g.groups.libertyCountOf(col, row)
	if len(captured) == 0 && ownLiberties == 0 {
		// Suicide: undo the placement (no captures were ever applied).
		g.groups.remove(col, row)
		g.board.cells[idx] = Empty
		return false
	}

	newHash := priorHash ^ zobrist().keyFor(idx, mover)
	for _, cidx := range captured {
		newHash ^= zobrist().keyFor(cidx, mover.Opposite())
	}
	newHash ^= zobrist().side()

	if g.config.Superko && g.seenHashes[newHash] > 0 {
		g.revertPlacement(col, row, idx, mover, captured)
		return false
	}

	if !commit {
		g.revertPlacement(col, row, idx, mover, captured)
		return true
	}

	ownGroupSize := len(g.groups.groupOf(col, row))
	newKo := -1
	if len(captured) == 1 && ownGroupSize == 1 && ownLiberties == 1 {
		newKo = captured[0]
	}

	g.hash = newHash
	g.koPoint = newKo
	g.passes = 0
	g.turn = mover.Opposite()
	g.moves++

	g.history.push(moveRecord{
		move:         Place(col, row),
		player:       mover,
		captured:     captured,
		priorKoPoint: priorKo,
		priorPasses:  priorPasses,
		priorHash:    priorHash,
		resultHash:   newHash,
	})
	g.seenHashes[newHash]++
	return true
}

// revertPlacement restores the board and groupTable to the state
// before a trial placement at idx by mover, given the stones it
// captured. Restoring captures first and only then removing the
// mover's own stone undoes the two steps in the order opposite to how
// they were applied.
func (g *Game) revertPlacement(col, row, idx int, mover Color, captured []int) {
	opponent := mover.Opposite()
	for _, cidx := range captured {
		ccol, crow := g.board.colRow(cidx)
		g.board.cells[cidx] = opponent
		g.groups.place(ccol, crow, opponent)
	}
	g.groups.remove(col, row)
	g.board.cells[idx] = Empty
}

// UnmakeMove pops and inverts the most recent move. Returns false if
// there is no history.
func (g *Game) UnmakeMove() bool {
	rec, ok := g.history.pop()
	if !ok {
		return false
	}
	if !rec.move.IsPass() {
		col, row := rec.move.Col(), rec.move.Row()
		idx := g.board.index(col, row)
		g.groups.remove(col, row)
		g.board.cells[idx] = Empty

		opponent := rec.player.Opposite()
		for _, cidx := range rec.captured {
			ccol, crow := g.board.colRow(cidx)
			g.board.cells[cidx] = opponent
			g.groups.place(ccol, crow, opponent)
		}
	}

	g.forgetResultHash(rec.resultHash)
	g.koPoint = rec.priorKoPoint
	g.passes = rec.priorPasses
	g.hash = rec.priorHash
	g.turn = rec.player
	g.moves--
	return true
}

func (g *Game) forgetResultHash(hash uint64) {
	if n := g.seenHashes[hash]; n <= 1 {
		delete(g.seenHashes, hash)
	} else {
		g.seenHashes[hash] = n - 1
	}
}

// Hash returns the current zobrist position hash (board contents plus
// side to move).
func (g *Game) Hash() uint64 { return g.hash }

// Clone returns an independent copy; mutating the clone never affects
// the original.
func (g *Game) Clone() *Game {
	seen := make(map[uint64]int, len(g.seenHashes))
	for k, v := range g.seenHashes {
		seen[k] = v
	}
	return &Game{
		config:     g.config,
		board:      g.board.clone(),
		groups:     g.groups.clone(),
		hash:       g.hash,
		turn:       g.turn,
		koPoint:    g.koPoint,
		passes:     g.passes,
		moves:      g.moves,
		history:    g.history.clone(),
		seenHashes: seen,
	}
}

// Equals reports positional equality: equal board, turn, ko point,
// consecutive passes, and (when superko is on) equal seen-position
// multisets, since two Games with identical current positions but
// different histories can behave differently under positional superko.
func (g *Game) Equals(other *Game) bool {
	if other == nil {
		return false
	}
	if g.board.width != other.board.width || g.board.height != other.board.height {
		return false
	}
	if g.turn != other.turn || g.koPoint != other.koPoint || g.passes != other.passes {
		return false
	}
	for i, c := range g.board.cells {
		if other.board.cells[i] != c {
			return false
		}
	}
	if g.config.Superko {
		if len(g.seenHashes) != len(other.seenHashes) {
			return false
		}
		for k, v := range g.seenHashes {
			if other.seenHashes[k] != v {
				return false
			}
		}
	}
	return true
}

func (g *Game) String() string {
	return fmt.Sprintf("%s\n%s to move, move %d", g.board.String(), g.turn, g.moves)
}
