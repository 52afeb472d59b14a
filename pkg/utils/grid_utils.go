package utils

// Rect 屏幕上的轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（左闭右开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// GridLayout 固定列数的网格排列，用于调色板等面板
type GridLayout struct {
	X, Y    float64 // 第一个格子的左上角
	Columns int     // 每行格子数
	CellW   float64 // 格子宽度
	CellH   float64 // 格子高度
	Spacing float64 // 格子间距
	Count   int     // 格子总数
}

// Rows 排满全部格子所需的行数
func (g GridLayout) Rows() int {
	if g.Columns <= 0 || g.Count <= 0 {
		return 0
	}
	return (g.Count + g.Columns - 1) / g.Columns
}

// SlotRect 返回第 i 个格子的屏幕矩形
// 参数:
//   - i: 格子序号，行优先
//
// 返回:
//   - Rect: 格子矩形
//   - bool: i 是否有效
func (g GridLayout) SlotRect(i int) (Rect, bool) {
	if i < 0 || i >= g.Count || g.Columns <= 0 {
		return Rect{}, false
	}
	col := i % g.Columns
	row := i / g.Columns
	return Rect{
		X: g.X + float64(col)*(g.CellW+g.Spacing),
		Y: g.Y + float64(row)*(g.CellH+g.Spacing),
		W: g.CellW,
		H: g.CellH,
	}, true
}

// IndexAt 返回屏幕坐标所在的格子序号，落在间距或网格外时返回 -1
func (g GridLayout) IndexAt(x, y float64) int {
	if g.Columns <= 0 || g.Count <= 0 {
		return -1
	}

	strideX := g.CellW + g.Spacing
	strideY := g.CellH + g.Spacing
	if strideX <= 0 || strideY <= 0 || x < g.X || y < g.Y {
		return -1
	}

	col := int((x - g.X) / strideX)
	row := int((y - g.Y) / strideY)
	if col >= g.Columns {
		return -1
	}

	i := row*g.Columns + col
	rect, ok := g.SlotRect(i)
	if !ok || !rect.Contains(x, y) {
		return -1
	}
	return i
}

// Bounds 整个网格占用的矩形
func (g GridLayout) Bounds() Rect {
	rows := g.Rows()
	cols := g.Columns
	if g.Count < cols {
		cols = g.Count
	}
	if rows == 0 || cols <= 0 {
		return Rect{X: g.X, Y: g.Y}
	}
	return Rect{
		X: g.X,
		Y: g.Y,
		W: float64(cols)*g.CellW + float64(cols-1)*g.Spacing,
		H: float64(rows)*g.CellH + float64(rows-1)*g.Spacing,
	}
}
