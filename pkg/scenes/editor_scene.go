package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/tilecraft/pkg/canvas"
	"github.com/gonewx/tilecraft/pkg/config"
	"github.com/gonewx/tilecraft/pkg/game"
	"github.com/gonewx/tilecraft/pkg/tileset"
	"github.com/gonewx/tilecraft/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// EditorState 编辑器场景的显示状态
type EditorState int

const (
	// StateReady 精灵图加载成功，显示调色板和画布
	StateReady EditorState = iota
	// StateImageMissing 精灵图无法加载，只显示错误提示
	StateImageMissing
)

// String 返回状态名，用于日志
func (s EditorState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateImageMissing:
		return "image-missing"
	}
	return "unknown"
}

// EditorScene 精灵图切片与网格放置编辑器
//
// 左侧是调色板（从精灵图切出的瓦片），右侧是放置画布。
// 从调色板按下并拖动瓦片，在画布内释放即可放置到吸附后的格子中心。
type EditorScene struct {
	resourceManager *game.ResourceManager
	cfg             *config.EditorConfig

	state     EditorState
	sheetPath string
	sheet     *ebiten.Image // 精灵图，StateImageMissing 时为 nil
	loadErr   error

	tileSize  tileset.TileSize
	tileCache *tileset.Cache
	canvas    *canvas.Canvas
	view      *canvas.ViewState
	drag      *utils.DragManager

	canvasRect     utils.Rect
	toolbar        []*toolbarButton
	hoverX, hoverY int // 最近一帧的指针位置，弹出预览跟随

	// 渲染资源
	labelFace  *text.GoTextFace
	titleFace  *text.GoTextFace
	gridImage  *ebiten.Image                   // 网格线离屏缓存，首次 Draw 时生成
	tileImages map[*tileset.Tile]*ebiten.Image // 非 ebiten 子图的转换缓存
}

// NewEditorScene 创建编辑器场景并加载精灵图
//
// 精灵图加载失败不会返回错误：场景进入 StateImageMissing，
// 在界面上显示 "Image not found" 提示。
func NewEditorScene(rm *game.ResourceManager, cfg *config.EditorConfig) *EditorScene {
	size := tileset.TileSize{Width: cfg.Tile.Width, Height: cfg.Tile.Height}

	scene := &EditorScene{
		resourceManager: rm,
		cfg:             cfg,
		sheetPath:       cfg.SpriteSheet,
		tileSize:        size,
		tileCache:       tileset.NewCache(),
		canvas:          canvas.New(size),
		view:            canvas.NewViewState(),
		drag:            utils.NewDragManager(),
		canvasRect: utils.Rect{
			X: cfg.Canvas.X,
			Y: cfg.Canvas.Y,
			W: float64(cfg.Canvas.Width),
			H: float64(cfg.Canvas.Height),
		},
		tileImages: make(map[*tileset.Tile]*ebiten.Image),
	}

	var err error
	scene.labelFace, err = rm.LoadFont(config.LabelFontSize)
	if err != nil {
		log.Printf("[EditorScene] Failed to load label font: %v", err)
	}
	scene.titleFace, err = rm.LoadFont(config.TitleFontSize)
	if err != nil {
		log.Printf("[EditorScene] Failed to load title font: %v", err)
	}

	scene.sheet, err = rm.LoadImage(cfg.SpriteSheet)
	if err != nil {
		log.Printf("[EditorScene] Failed to load sprite sheet: %v", err)
		scene.state = StateImageMissing
		scene.loadErr = err
		scene.view.Status = fmt.Sprintf("Image not found: %s", cfg.SpriteSheet)
	} else {
		scene.state = StateReady
		tiles := scene.paletteTiles()
		scene.view.Status = fmt.Sprintf("%d tiles (%dx%d)", len(tiles), size.Width, size.Height)
		log.Printf("[EditorScene] Sprite sheet %s sliced into %d tiles", cfg.SpriteSheet, len(tiles))
	}

	scene.toolbar = scene.buildToolbar()

	return scene
}

// State 返回当前显示状态
func (s *EditorScene) State() EditorState {
	return s.state
}

// Canvas 返回放置画布模型
func (s *EditorScene) Canvas() *canvas.Canvas {
	return s.canvas
}

// View 返回界面状态
func (s *EditorScene) View() *canvas.ViewState {
	return s.view
}

// LoadError 返回精灵图加载错误，StateReady 时为 nil
func (s *EditorScene) LoadError() error {
	return s.loadErr
}

// paletteTiles 返回调色板瓦片，每次渲染调用，结果由缓存保证稳定
func (s *EditorScene) paletteTiles() []*tileset.Tile {
	if s.sheet == nil {
		return nil
	}
	return s.tileCache.Get(s.sheet, s.tileSize)
}

// paletteLayout 计算调色板格子布局
func (s *EditorScene) paletteLayout() utils.GridLayout {
	p := s.cfg.Palette
	return utils.GridLayout{
		X:       p.X,
		Y:       p.Y,
		Columns: p.Columns,
		CellW:   float64(s.tileSize.Width) * p.Scale,
		CellH:   float64(s.tileSize.Height) * p.Scale,
		Spacing: p.Spacing,
		Count:   len(s.paletteTiles()),
	}
}

// toCanvas 屏幕坐标转换为画布局部坐标
func (s *EditorScene) toCanvas(x, y int) canvas.Point {
	return canvas.Point{
		X: float64(x) - s.canvasRect.X,
		Y: float64(y) - s.canvasRect.Y,
	}
}

// Update 每帧采样指针并分发拖拽事件
func (s *EditorScene) Update(deltaTime float64) {
	s.drag.Update()
	hoverX, hoverY := utils.CursorPosition()
	s.handleInput(s.drag.GetInfo(), hoverX, hoverY)
}

// handleInput 处理一帧的指针输入
//
// 参数：
//   - info: 拖拽管理器本帧的状态
//   - hoverX, hoverY: 指针当前位置，用于悬停检测
func (s *EditorScene) handleInput(info utils.DragInfo, hoverX, hoverY int) {
	s.updateHover(hoverX, hoverY)

	switch info.State {
	case utils.DragStateStarted:
		s.handlePress(info.StartX, info.StartY)

	case utils.DragStateDragging:
		if s.canvas.IsDragging() {
			s.canvas.UpdateDrag(s.toCanvas(info.CurrentX, info.CurrentY))
		}

	case utils.DragStateEnded:
		s.handleRelease(info.CurrentX, info.CurrentY)
	}
}

// updateHover 更新调色板悬停索引，拖拽中不显示悬停
func (s *EditorScene) updateHover(x, y int) {
	s.hoverX, s.hoverY = x, y
	if s.state != StateReady || s.canvas.IsDragging() {
		s.view.ClearHover()
		return
	}
	s.view.SetHover(s.paletteLayout().IndexAt(float64(x), float64(y)))
}

// handlePress 按下：工具栏按钮或调色板瓦片
func (s *EditorScene) handlePress(x, y int) {
	fx, fy := float64(x), float64(y)

	if btn := s.buttonAt(fx, fy); btn != nil {
		btn.activate()
		return
	}

	if s.state != StateReady {
		return
	}

	tiles := s.paletteTiles()
	if i := s.paletteLayout().IndexAt(fx, fy); i >= 0 && i < len(tiles) {
		s.canvas.BeginDrag(tiles[i])
		s.view.ClearHover()
		log.Printf("[EditorScene] Begin drag tile %d", tiles[i].Label())
	}
}

// handleRelease 释放：在画布内释放才提交放置，否则取消拖拽
func (s *EditorScene) handleRelease(x, y int) {
	if !s.canvas.IsDragging() {
		return
	}

	if !s.canvasRect.Contains(float64(x), float64(y)) {
		s.canvas.CancelDrag()
		log.Printf("[EditorScene] Drag released outside canvas at (%d, %d), cancelled", x, y)
		return
	}

	placed, ok := s.canvas.EndDrag(s.toCanvas(x, y))
	switch {
	case !ok:
		s.view.Status = "Cell already occupied"
	case !s.insideGrid(placed.Position):
		s.view.Status = fmt.Sprintf("Placed tile %d at (%.0f, %.0f), outside the visible grid",
			placed.Tile.Label(), placed.Position.X, placed.Position.Y)
	default:
		s.view.Status = fmt.Sprintf("Placed tile %d at (%.0f, %.0f)",
			placed.Tile.Label(), placed.Position.X, placed.Position.Y)
	}
}

// insideGrid 吸附后的位置是否落在可见网格内
func (s *EditorScene) insideGrid(pos canvas.Point) bool {
	_, ok := canvas.CellAt(s.cfg.Canvas.Width, s.cfg.Canvas.Height, s.tileSize, pos)
	return ok
}
