// Package canvas 实现网格放置画布的模型层
//
// 画布记录已放置的瓦片和当前拖拽状态。拖拽结束时把落点吸附到网格，
// 同一个吸附点只允许放置一个瓦片。所有方法都只在游戏循环中调用，
// 不需要加锁。
package canvas

import (
	"log"
	"math"

	"github.com/gonewx/tilecraft/pkg/tileset"
)

// Point 画布局部像素坐标
type Point struct {
	X, Y float64
}

// PlacedTile 一次成功放置的结果，创建后不再修改
type PlacedTile struct {
	Tile     *tileset.Tile
	Position Point // 所在格子的中心点
}

// Canvas 放置画布
//
// 拖拽生命周期只有两个状态：空闲 <-> 拖拽中。
type Canvas struct {
	tileSize tileset.TileSize
	placed   []PlacedTile

	dragging    *tileset.Tile
	dragPos     Point
	dragPosSeen bool // 收到过 UpdateDrag 之后拖拽位置才有意义
}

// New 创建指定瓦片尺寸的空画布
func New(size tileset.TileSize) *Canvas {
	return &Canvas{tileSize: size}
}

// TileSize 返回画布使用的瓦片尺寸
func (c *Canvas) TileSize() tileset.TileSize {
	return c.tileSize
}

// BeginDrag 开始拖拽一个瓦片，拖拽位置在第一次 UpdateDrag 之前无效
func (c *Canvas) BeginDrag(tile *tileset.Tile) {
	if tile == nil {
		return
	}
	c.dragging = tile
	c.dragPos = Point{}
	c.dragPosSeen = false
}

// UpdateDrag 更新拖拽位置，只影响浮动预览，不改变已放置的瓦片
func (c *Canvas) UpdateDrag(p Point) {
	if c.dragging == nil {
		return
	}
	c.dragPos = p
	c.dragPosSeen = true
}

// EndDrag 在 p 处结束拖拽
//
// 落点吸附到 Snap(p)。如果没有已放置的瓦片恰好位于该点，则追加一个新的
// PlacedTile；否则丢弃这次放置。无论结果如何都会清除拖拽状态。
//
// 返回：
//   - PlacedTile: 新放置的瓦片（仅在 ok 为 true 时有效）
//   - bool: 是否放置成功
func (c *Canvas) EndDrag(p Point) (PlacedTile, bool) {
	tile := c.dragging
	c.CancelDrag()

	if tile == nil {
		return PlacedTile{}, false
	}

	snapped := c.Snap(p)
	if c.Occupied(snapped) {
		log.Printf("[Canvas] Cell (%.0f, %.0f) already occupied, drop of tile %d discarded",
			snapped.X, snapped.Y, tile.Label())
		return PlacedTile{}, false
	}

	placed := PlacedTile{Tile: tile, Position: snapped}
	c.placed = append(c.placed, placed)
	log.Printf("[Canvas] Placed tile %d at (%.0f, %.0f)", tile.Label(), snapped.X, snapped.Y)
	return placed, true
}

// CancelDrag 放弃当前拖拽，不放置任何瓦片
func (c *Canvas) CancelDrag() {
	c.dragging = nil
	c.dragPos = Point{}
	c.dragPosSeen = false
}

// Dragging 返回当前拖拽的瓦片和位置
// hasPos 为 false 表示还没有收到位置更新
func (c *Canvas) Dragging() (tile *tileset.Tile, pos Point, hasPos bool) {
	return c.dragging, c.dragPos, c.dragPosSeen
}

// IsDragging 是否处于拖拽中
func (c *Canvas) IsDragging() bool {
	return c.dragging != nil
}

// Snap 把点吸附到格子中心
//
//	x' = round(x/tw)*tw + tw/2
//	y' = round(y/th)*th + th/2
//
// round 为 math.Round（0.5 远离零取整）。
func (c *Canvas) Snap(p Point) Point {
	tw := float64(c.tileSize.Width)
	th := float64(c.tileSize.Height)
	return Point{
		X: math.Round(p.X/tw)*tw + tw/2,
		Y: math.Round(p.Y/th)*th + th/2,
	}
}

// Occupied 是否已有瓦片精确位于 pos（只比较相等，不做邻近判断）
func (c *Canvas) Occupied(pos Point) bool {
	for _, pt := range c.placed {
		if pt.Position == pos {
			return true
		}
	}
	return false
}

// Placed 返回已放置瓦片的副本，按放置顺序排列
func (c *Canvas) Placed() []PlacedTile {
	out := make([]PlacedTile, len(c.placed))
	copy(out, c.placed)
	return out
}

// Len 已放置瓦片数量
func (c *Canvas) Len() int {
	return len(c.placed)
}

// Clear 清空所有已放置的瓦片和拖拽状态
func (c *Canvas) Clear() {
	c.placed = nil
	c.CancelDrag()
	log.Printf("[Canvas] Cleared")
}
