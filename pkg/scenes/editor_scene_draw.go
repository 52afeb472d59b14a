package scenes

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/gonewx/tilecraft/pkg/canvas"
	"github.com/gonewx/tilecraft/pkg/config"
	"github.com/gonewx/tilecraft/pkg/tileset"
	"github.com/gonewx/tilecraft/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw 渲染编辑器
// 画面完全由场景状态决定：调色板、画布、工具栏、拖拽预览、状态栏
func (s *EditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	s.drawToolbar(screen)

	if s.state == StateImageMissing {
		s.drawImageMissing(screen)
		s.drawStatus(screen)
		return
	}

	s.drawPalette(screen)
	s.drawCanvas(screen)
	s.drawDragPreview(screen)
	s.drawPopover(screen)
	s.drawStatus(screen)
}

func (s *EditorScene) drawImageMissing(screen *ebiten.Image) {
	msg := fmt.Sprintf("Image not found: %s", s.sheetPath)
	x := s.canvasRect.X + 16
	y := s.canvasRect.Y + s.canvasRect.H/2
	s.drawText(screen, msg, s.titleFace, x, y, config.ErrorTextColor)
}

func (s *EditorScene) drawPalette(screen *ebiten.Image) {
	s.drawText(screen, "Tiles", s.titleFace, s.cfg.Palette.X, config.PaletteTitleY, config.TextColor)

	layout := s.paletteLayout()
	bounds := layout.Bounds()
	pad := float32(s.cfg.Palette.Spacing)
	vector.DrawFilledRect(screen,
		float32(bounds.X)-pad, float32(bounds.Y)-pad,
		float32(bounds.W)+2*pad, float32(bounds.H)+2*pad,
		config.PanelColor, false)

	for i, tile := range s.paletteTiles() {
		rect, ok := layout.SlotRect(i)
		if !ok {
			break
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.cfg.Palette.Scale, s.cfg.Palette.Scale)
		op.GeoM.Translate(rect.X, rect.Y)
		screen.DrawImage(s.tileImage(tile), op)

		s.drawText(screen, strconv.Itoa(tile.Label()), s.labelFace, rect.X+2, rect.Y+1, config.TextColor)

		if i == s.view.HoverIndex {
			strokeRect(screen, rect, 2, config.HoverColor)
		}
	}
}

func (s *EditorScene) drawCanvas(screen *ebiten.Image) {
	if s.gridImage == nil {
		s.gridImage = s.renderGrid()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.canvasRect.X, s.canvasRect.Y)
	screen.DrawImage(s.gridImage, op)

	// 吸附点可能落在最后一列/行之外，放置的瓦片裁剪到画布区域
	clip := screen.SubImage(image.Rect(
		int(s.canvasRect.X), int(s.canvasRect.Y),
		int(s.canvasRect.X+s.canvasRect.W), int(s.canvasRect.Y+s.canvasRect.H),
	)).(*ebiten.Image)

	for _, placed := range s.canvas.Placed() {
		s.drawTileCentered(clip, placed.Tile, placed.Position, 1)
	}
}

// renderGrid 把网格线绘制到离屏图片，只依赖画布尺寸和瓦片尺寸
func (s *EditorScene) renderGrid() *ebiten.Image {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height
	img := ebiten.NewImage(w, h)
	img.Fill(config.PanelColor)

	for _, cell := range canvas.GridCells(w, h, s.tileSize) {
		vector.StrokeRect(img,
			float32(cell.X), float32(cell.Y), float32(cell.W), float32(cell.H),
			1, config.GridLineColor, false)
	}
	return img
}

func (s *EditorScene) drawDragPreview(screen *ebiten.Image) {
	tile, pos, hasPos := s.canvas.Dragging()
	if tile == nil || !hasPos {
		return
	}
	s.drawTileCentered(screen, tile, pos, config.DragPreviewAlpha)
}

// drawPopover 悬停瓦片的放大预览
func (s *EditorScene) drawPopover(screen *ebiten.Image) {
	tiles := s.paletteTiles()
	i := s.view.PopoverIndex
	if i < 0 || i >= len(tiles) {
		return
	}
	tile := tiles[i]

	x := float64(s.hoverX) + config.PopoverOffset
	y := float64(s.hoverY) + config.PopoverOffset
	w := float64(s.tileSize.Width) * config.PopoverScale
	h := float64(s.tileSize.Height) * config.PopoverScale

	vector.DrawFilledRect(screen, float32(x)-4, float32(y)-4, float32(w)+8, float32(h)+24, config.PanelColor, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.PopoverScale, config.PopoverScale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(s.tileImage(tile), op)
	strokeRect(screen, utils.Rect{X: x, Y: y, W: w, H: h}, 1, config.HoverColor)

	s.drawText(screen, fmt.Sprintf("Tile #%d (row %d, col %d)", tile.Label(), tile.Row, tile.Col),
		s.labelFace, x, y+h+4, config.TextColor)
}

func (s *EditorScene) drawToolbar(screen *ebiten.Image) {
	for _, b := range s.toolbar {
		bg, fg := config.ButtonColor, config.TextColor
		if !b.enabled {
			bg, fg = config.ButtonDisabledColor, config.TextDisabledColor
		}
		vector.DrawFilledRect(screen, float32(b.rect.X), float32(b.rect.Y), float32(b.rect.W), float32(b.rect.H), bg, false)
		s.drawText(screen, b.label, s.labelFace, b.rect.X+config.ToolbarButtonPadding, b.rect.Y+7, fg)
	}
}

func (s *EditorScene) drawStatus(screen *ebiten.Image) {
	if s.view.Status == "" {
		return
	}
	y := s.canvasRect.Y + s.canvasRect.H + 2
	s.drawText(screen, s.view.Status, s.labelFace, s.canvasRect.X, y, config.TextColor)
}

// drawTileCentered 以 pos（画布局部坐标）为中心绘制瓦片
func (s *EditorScene) drawTileCentered(dst *ebiten.Image, tile *tileset.Tile, pos canvas.Point, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		s.canvasRect.X+pos.X-float64(s.tileSize.Width)/2,
		s.canvasRect.Y+pos.Y-float64(s.tileSize.Height)/2,
	)
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(alpha)
	}
	dst.DrawImage(s.tileImage(tile), op)
}

// tileImage 返回瓦片的 ebiten 图片
// 精灵图本身是 *ebiten.Image 时子图可直接使用，否则转换一次并缓存
func (s *EditorScene) tileImage(tile *tileset.Tile) *ebiten.Image {
	if img, ok := tile.Image.(*ebiten.Image); ok {
		return img
	}
	if img, ok := s.tileImages[tile]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(tile.Image)
	s.tileImages[tile] = img
	return img
}

// drawText 绘制文字，字体不可用时退回到调试字体
func (s *EditorScene) drawText(dst *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(dst, str, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

func strokeRect(dst *ebiten.Image, r utils.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}
