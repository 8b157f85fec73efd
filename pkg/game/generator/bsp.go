package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

// BSPGenerator fills the board with barriers and carves rooms joined by
// corridors using Binary Space Partitioning. It places Start in a random
// room and End on the reachable cell furthest from it, so the result always
// has a path.
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() (row, col int) {
	return r.y + r.height/2, r.x + r.width/2
}

// Constants for BSP generation
const (
	minNodeSize = 6 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a room
	roomPadding = 1 // Padding between room and node edge
)

// Generate replaces the board's contents with a room layout
func (g *BSPGenerator) Generate(b *state.Board, rng *rand.Rand) error {
	grid := b.Grid()
	n := grid.Size()
	if n < 2 {
		return ErrTooSmall
	}

	b.Clear()
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		cell.SetState(world.Barrier)
	})

	root := &bspNode{x: 0, y: 0, width: n, height: n}
	splitBSP(root, minNodeSize, rng)
	createRooms(root, rng)
	carveRooms(grid, root)
	connectRooms(grid, root, rng)

	rooms := collectRooms(root)
	startRoom := rooms[rng.Intn(len(rooms))]
	start := grid.GetCell(startRoom.center())
	end := findFurthestCell(grid, start)
	if end == nil || end == start {
		// Single-cell room with no corridor; open a neighbor for End
		end = grid.GetCellRelative(start, world.South)
		if end == nil {
			end = grid.GetCellRelative(start, world.North)
		}
		grid.ResetCell(end)
	}

	if err := b.SetStart(start); err != nil {
		return err
	}
	return b.SetEnd(end)
}

// randRange returns a value in [lo, hi], or lo when the range is empty
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	canSplitH := node.height >= minSize*2
	canSplitV := node.width >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case canSplitV && node.width > node.height:
		splitHorizontal = false
	case canSplitH && node.height > node.width:
		splitHorizontal = true
	case canSplitH && canSplitV:
		splitHorizontal = rng.Intn(2) == 0
	case canSplitV:
		splitHorizontal = false
	case canSplitH:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		splitPoint := randRange(rng, minSize, node.height-minSize)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := randRange(rng, minSize, node.width-minSize)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// createRooms creates rooms in leaf nodes
func createRooms(node *bspNode, rng *rand.Rand) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(node.left, rng)
		}
		if node.right != nil {
			createRooms(node.right, rng)
		}
		return
	}

	maxWidth := max(node.width-roomPadding, 1)
	maxHeight := max(node.height-roomPadding, 1)
	roomWidth := randRange(rng, min(minRoomSize, maxWidth), maxWidth)
	roomHeight := randRange(rng, min(minRoomSize, maxHeight), maxHeight)

	node.room = &bspRoom{
		x:      node.x + randRange(rng, 0, node.width-roomWidth),
		y:      node.y + randRange(rng, 0, node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms clears the barrier from every room cell
func carveRooms(grid *world.Grid, node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				grid.ResetCell(grid.GetCell(row, col))
			}
		}
	}

	if node.left != nil {
		carveRooms(grid, node.left)
	}
	if node.right != nil {
		carveRooms(grid, node.right)
	}
}

// connectRooms joins a room from each subtree with an L-shaped corridor
func connectRooms(grid *world.Grid, node *bspNode, rng *rand.Rand) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(node.left, rng)
	rightRoom := getRoom(node.right, rng)

	if leftRoom != nil && rightRoom != nil {
		leftRow, leftCol := leftRoom.center()
		rightRow, rightCol := rightRoom.center()

		if rng.Intn(2) == 0 {
			carveCorridorHorizontal(grid, leftRow, leftCol, rightCol)
			carveCorridorVertical(grid, rightCol, leftRow, rightRow)
		} else {
			carveCorridorVertical(grid, leftCol, leftRow, rightRow)
			carveCorridorHorizontal(grid, rightRow, leftCol, rightCol)
		}
	}

	connectRooms(grid, node.left, rng)
	connectRooms(grid, node.right, rng)
}

func carveCorridorHorizontal(grid *world.Grid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		grid.ResetCell(grid.GetCell(row, col))
	}
}

func carveCorridorVertical(grid *world.Grid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		grid.ResetCell(grid.GetCell(row, col))
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(node *bspNode, rng *rand.Rand) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(node.left, rng)
	}
	if node.right != nil {
		rightRoom = getRoom(node.right, rng)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

// findFurthestCell uses BFS to find the cell with the longest path distance from start
func findFurthestCell(grid *world.Grid, start *world.Cell) *world.Cell {
	if start == nil {
		return nil
	}

	type cellDist struct {
		cell *world.Cell
		dist int
	}

	visited := mapset.New[*world.Cell]()
	visited.Put(start)
	queue := []cellDist{{start, 0}}

	var furthestCell *world.Cell
	maxDist := -1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			maxDist = current.dist
			furthestCell = current.cell
		}

		for _, neighbor := range grid.NeighborsOf(current.cell) {
			if !visited.Has(neighbor) {
				visited.Put(neighbor)
				queue = append(queue, cellDist{neighbor, current.dist + 1})
			}
		}
	}

	return furthestCell
}
