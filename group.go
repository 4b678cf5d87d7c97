package spooky

// stoneGroup is one maximal same-color connected set of stones, along
// with its liberty set. Only ever accessed through groupTable, keyed by
// the index of its current representative stone.
type stoneGroup struct {
	color  Color
	stones map[int]struct{}
	libs   map[int]struct{}
}

// groupTable is an incremental disjoint-set forest over board cells,
// grounded on the flood-fill capture detection in robot.go's
// markSurroundedChain and otrego/clamshell's capturedStones, but
// restructured into a union-find whose roots carry precomputed liberty
// sets, so neither group membership nor liberty counts ever need a
// full board rescan. parent[i] == -1 means cell i is empty; otherwise
// parent chains (with path halving) lead to a root r with parent[r] == r.
type groupTable struct {
	width, height int
	parent        []int
	groups        map[int]*stoneGroup
}

func newGroupTable(width, height int) *groupTable {
	parent := make([]int, width*height)
	for i := range parent {
		parent[i] = -1
	}
	return &groupTable{width: width, height: height, parent: parent, groups: make(map[int]*stoneGroup)}
}

func (gt *groupTable) index(col, row int) int { return row*gt.width + col }

func (gt *groupTable) neighborsOf(idx int) []int {
	col := idx % gt.width
	row := idx / gt.width
	out := make([]int, 0, 4)
	if col > 0 {
		out = append(out, idx-1)
	}
	if col < gt.width-1 {
		out = append(out, idx+1)
	}
	if row > 0 {
		out = append(out, idx-gt.width)
	}
	if row < gt.height-1 {
		out = append(out, idx+gt.width)
	}
	return out
}

func (gt *groupTable) find(x int) int {
	for gt.parent[x] != x {
		gt.parent[x] = gt.parent[gt.parent[x]] // path halving
		x = gt.parent[x]
	}
	return x
}

// union merges the (same-color) groups rooted at a and b, keeping the
// larger group's root, and returns the surviving root.
func (gt *groupTable) union(a, b int) int {
	winner, loser := a, b
	if len(gt.groups[b].stones) > len(gt.groups[a].stones) {
		winner, loser = b, a
	}
	wg, lg := gt.groups[winner], gt.groups[loser]
	for s := range lg.stones {
		wg.stones[s] = struct{}{}
		gt.parent[s] = winner
	}
	for l := range lg.libs {
		wg.libs[l] = struct{}{}
	}
	delete(gt.groups, loser)
	return winner
}

// place adds a color stone at (col,row): merges same-color neighbor
// groups, decrements the liberty count of adjacent opposite-color
// groups (once per distinct group), and returns the board indices of
// every stone in the opposite-color groups whose liberties have reached
// zero. It does
// not remove those stones; that is the caller's job via remove, after
// deciding whether the move is legal.
func (gt *groupTable) place(col, row int, color Color) []int {
	cellIdx := gt.index(col, row)
	gt.parent[cellIdx] = cellIdx

	g := &stoneGroup{color: color, stones: map[int]struct{}{cellIdx: {}}, libs: map[int]struct{}{}}
	for _, nb := range gt.neighborsOf(cellIdx) {
		if gt.parent[nb] == -1 {
			g.libs[nb] = struct{}{}
		}
	}
	gt.groups[cellIdx] = g
	root := cellIdx

	oppRoots := make(map[int]struct{})
	for _, nb := range gt.neighborsOf(cellIdx) {
		if gt.parent[nb] == -1 {
			continue
		}
		nbRoot := gt.find(nb)
		if nbRoot == root {
			continue
		}
		if gt.groups[nbRoot].color == color {
			root = gt.union(root, nbRoot)
		} else {
			oppRoots[nbRoot] = struct{}{}
		}
	}
	delete(gt.groups[root].libs, cellIdx)

	var captured []int
	for oppRoot := range oppRoots {
		og := gt.groups[oppRoot]
		delete(og.libs, cellIdx)
		if len(og.libs) == 0 {
			for s := range og.stones {
				captured = append(captured, s)
			}
		}
	}
	return captured
}

// remove takes a single stone off the board. If that stone was a
// cut-point joining two regions of its group, the group is rebuilt into
// however many connected components remain, each with freshly
// recomputed liberties; this is what makes remove safe to call either
// for unwinding a single placement (undo) or for dismantling a captured
// group one stone at a time (in either order).
//
// For every neighbor of the removed cell that holds the opposite color,
// the now-empty cell is added back to that neighbor's group's liberty
// set.
func (gt *groupTable) remove(col, row int) {
	idx := gt.index(col, row)
	root := gt.find(idx)
	g := gt.groups[root]
	removedColor := g.color

	remaining := make([]int, 0, len(g.stones)-1)
	remainingSet := make(map[int]bool, len(g.stones)-1)
	for s := range g.stones {
		if s == idx {
			continue
		}
		remaining = append(remaining, s)
		remainingSet[s] = true
	}
	delete(gt.groups, root)
	for s := range g.stones {
		gt.parent[s] = -2 // detached, not yet reassigned
	}
	gt.parent[idx] = -1

	visited := make(map[int]bool, len(remaining))
	for _, s := range remaining {
		if visited[s] {
			continue
		}
		comp := gt.floodComponent(s, remainingSet, visited)
		newRoot := comp[0]
		libs := make(map[int]struct{})
		stones := make(map[int]struct{}, len(comp))
		for _, c := range comp {
			stones[c] = struct{}{}
		}
		for _, c := range comp {
			gt.parent[c] = newRoot
		}
		for _, c := range comp {
			for _, nb := range gt.neighborsOf(c) {
				if gt.parent[nb] == -1 {
					libs[nb] = struct{}{}
				}
			}
		}
		gt.parent[newRoot] = newRoot
		gt.groups[newRoot] = &stoneGroup{color: removedColor, stones: stones, libs: libs}
	}

	for _, nb := range gt.neighborsOf(idx) {
		if gt.parent[nb] < 0 {
			continue
		}
		nbRoot := gt.find(nb)
		nbGroup := gt.groups[nbRoot]
		if nbGroup.color != removedColor {
			nbGroup.libs[idx] = struct{}{}
		}
	}
}

func (gt *groupTable) floodComponent(start int, within map[int]bool, visited map[int]bool) []int {
	comp := []int{start}
	visited[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range gt.neighborsOf(cur) {
			if within[nb] && !visited[nb] {
				visited[nb] = true
				comp = append(comp, nb)
				queue = append(queue, nb)
			}
		}
	}
	return comp
}

func (gt *groupTable) groupOf(col, row int) []int {
	idx := gt.index(col, row)
	if gt.parent[idx] == -1 {
		return nil
	}
	g := gt.groups[gt.find(idx)]
	out := make([]int, 0, len(g.stones))
	for s := range g.stones {
		out = append(out, s)
	}
	return out
}

func (gt *groupTable) libertiesOf(col, row int) []int {
	idx := gt.index(col, row)
	if gt.parent[idx] == -1 {
		return nil
	}
	g := gt.groups[gt.find(idx)]
	out := make([]int, 0, len(g.libs))
	for l := range g.libs {
		out = append(out, l)
	}
	return out
}

func (gt *groupTable) libertyCountOf(col, row int) int {
	idx := gt.index(col, row)
	if gt.parent[idx] == -1 {
		return 0
	}
	return len(gt.groups[gt.find(idx)].libs)
}

// clone returns an independent copy sharing no backing storage.
func (gt *groupTable) clone() *groupTable {
	parent := make([]int, len(gt.parent))
	copy(parent, gt.parent)
	groups := make(map[int]*stoneGroup, len(gt.groups))
	for root, g := range gt.groups {
		stones := make(map[int]struct{}, len(g.stones))
		for s := range g.stones {
			stones[s] = struct{}{}
		}
		libs := make(map[int]struct{}, len(g.libs))
		for l := range g.libs {
			libs[l] = struct{}{}
		}
		groups[root] = &stoneGroup{color: g.color, stones: stones, libs: libs}
	}
	return &groupTable{width: gt.width, height: gt.height, parent: parent, groups: groups}
}
