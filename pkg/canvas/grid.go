package canvas

import (
	"math"

	"github.com/gonewx/tilecraft/pkg/tileset"
)

// Cell 画布网格中的一个格子
type Cell struct {
	Row, Col int
	X, Y     float64 // 左上角
	W, H     float64
	Center   Point
}

// GridCells 计算画布上需要绘制轮廓的格子
//
// rows = floor(canvasH/th)，columns = floor(canvasW/tw)，行优先排列。
// 结果只依赖画布尺寸和瓦片尺寸。
func GridCells(canvasW, canvasH int, size tileset.TileSize) []Cell {
	if !size.Valid() || canvasW <= 0 || canvasH <= 0 {
		return nil
	}

	rows := canvasH / size.Height
	columns := canvasW / size.Width
	tw := float64(size.Width)
	th := float64(size.Height)

	cells := make([]Cell, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := float64(col) * tw
			y := float64(row) * th
			cells = append(cells, Cell{
				Row:    row,
				Col:    col,
				X:      x,
				Y:      y,
				W:      tw,
				H:      th,
				Center: Point{X: x + tw/2, Y: y + th/2},
			})
		}
	}
	return cells
}

// CellAt 返回中心点为 center 的格子
// 吸附点可能落在最后一列/行之外，此时 ok 为 false
func CellAt(canvasW, canvasH int, size tileset.TileSize, center Point) (cell Cell, ok bool) {
	if !size.Valid() {
		return Cell{}, false
	}
	tw := float64(size.Width)
	th := float64(size.Height)

	col := int(math.Floor(center.X / tw))
	row := int(math.Floor(center.Y / th))
	if col < 0 || row < 0 || col >= canvasW/size.Width || row >= canvasH/size.Height {
		return Cell{}, false
	}

	x := float64(col) * tw
	y := float64(row) * th
	return Cell{
		Row:    row,
		Col:    col,
		X:      x,
		Y:      y,
		W:      tw,
		H:      th,
		Center: Point{X: x + tw/2, Y: y + th/2},
	}, true
}
