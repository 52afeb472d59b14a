// Package tileset 把精灵图切分为固定尺寸的瓦片
//
// 切分按行优先顺序进行：先行后列，瓦片索引为 row*columns + col。
// 图片尺寸不是瓦片尺寸整数倍时，末尾不完整的行和列直接丢弃。
package tileset

import (
	"image"
	"image/draw"
	"log"
)

// TileSize 瓦片尺寸（像素）
type TileSize struct {
	Width  int
	Height int
}

// Valid 两个方向的尺寸都必须为正数
func (s TileSize) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Tile 是从精灵图中裁剪出的一个子图
type Tile struct {
	Index  int             // 行优先索引，从 0 开始
	Row    int             // 所在行
	Col    int             // 所在列
	Bounds image.Rectangle // 在源图中的像素矩形
	Image  image.Image     // 裁剪后的子图
}

// Label 返回界面上显示的编号（从 1 开始）
func (t *Tile) Label() int {
	return t.Index + 1
}

// subImager 由 *image.RGBA、*image.NRGBA、*ebiten.Image 等实现
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// GridDimensions 返回源图能切出的完整行数和列数
func GridDimensions(bounds image.Rectangle, size TileSize) (rows, columns int) {
	if !size.Valid() {
		return 0, 0
	}
	return bounds.Dy() / size.Height, bounds.Dx() / size.Width
}

// Extract 将源图切分为行优先排列的瓦片序列
//
// 参数：
//   - src: 源图，可以是标准库图片或 *ebiten.Image
//   - size: 瓦片尺寸
//
// 返回：
//   - []*Tile: 切分结果。某个格子裁剪失败时跳过该格子，其余格子照常返回，
//     因此长度可能小于 rows*columns，但 Index 始终等于 row*columns + col
func Extract(src image.Image, size TileSize) []*Tile {
	if src == nil || !size.Valid() {
		return nil
	}

	bounds := src.Bounds()
	rows, columns := GridDimensions(bounds, size)
	if rows == 0 || columns == 0 {
		return nil
	}

	tiles := make([]*Tile, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			rect := image.Rect(
				bounds.Min.X+col*size.Width,
				bounds.Min.Y+row*size.Height,
				bounds.Min.X+(col+1)*size.Width,
				bounds.Min.Y+(row+1)*size.Height,
			)

			sub, ok := crop(src, rect)
			if !ok {
				log.Printf("[Tileset] Skipping tile (%d, %d): crop %v failed", row, col, rect)
				continue
			}

			tiles = append(tiles, &Tile{
				Index:  row*columns + col,
				Row:    row,
				Col:    col,
				Bounds: rect,
				Image:  sub,
			})
		}
	}

	return tiles
}

// crop 裁剪 rect 区域，裁剪结果与请求矩形尺寸不一致时视为失败
func crop(src image.Image, rect image.Rectangle) (image.Image, bool) {
	if s, ok := src.(subImager); ok {
		sub := s.SubImage(rect)
		if sub == nil || sub.Bounds().Size() != rect.Size() {
			return nil, false
		}
		return sub, true
	}

	// 不支持 SubImage 的图片类型逐像素复制
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, true
}
