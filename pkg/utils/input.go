// Package utils 提供编辑器通用的输入和布局工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放），只持续一帧
	DragStateEnded
)

// String 返回状态名，用于日志
func (s DragState) String() string {
	switch s {
	case DragStateNone:
		return "none"
	case DragStateStarted:
		return "started"
	case DragStateDragging:
		return "dragging"
	case DragStateEnded:
		return "ended"
	}
	return "unknown"
}

// PointerSample 一帧的指针采样（鼠标左键或单个触摸点）
type PointerSample struct {
	Down    bool           // 是否按下
	X, Y    int            // 指针位置（屏幕坐标）
	TouchID ebiten.TouchID // 触摸 ID，鼠标为 -1
	IsTouch bool
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标），释放后保留最后位置
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，由持有它的场景每帧调用 Update
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建空闲状态的拖拽管理器
func NewDragManager() *DragManager {
	dm := &DragManager{}
	dm.Reset()
	return dm
}

// Update 采样当前输入并推进状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Advance(dm.sample())
}

// Advance 根据一帧的采样推进拖拽状态
func (dm *DragManager) Advance(s PointerSample) {
	switch dm.info.State {
	case DragStateNone:
		if s.Down {
			dm.info = DragInfo{
				State:        DragStateStarted,
				StartX:       s.X,
				StartY:       s.Y,
				CurrentX:     s.X,
				CurrentY:     s.Y,
				TouchID:      s.TouchID,
				IsTouchInput: s.IsTouch,
			}
		}

	case DragStateStarted, DragStateDragging:
		if !s.Down {
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y

	case DragStateEnded:
		dm.Reset()
	}
}

// TouchPoint 一个触摸点的 ID 和位置
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y int
}

// sample 从 Ebitengine 读取当前指针
func (dm *DragManager) sample() PointerSample {
	var touches []TouchPoint
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, TouchPoint{ID: id, X: x, Y: y})
	}

	x, y := ebiten.CursorPosition()
	mouse := PointerSample{
		Down:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
		TouchID: -1,
	}
	return dm.choosePointer(touches, mouse)
}

// choosePointer 选择本帧跟踪的指针
//
// 拖拽开始后固定在开始时的输入源：触摸只看同一个 ID，鼠标只看鼠标。
// 空闲时触摸优先，其次鼠标。
func (dm *DragManager) choosePointer(touches []TouchPoint, mouse PointerSample) PointerSample {
	if dm.info.State != DragStateNone {
		if !dm.info.IsTouchInput {
			return mouse
		}
		for _, tp := range touches {
			if tp.ID == dm.info.TouchID {
				return PointerSample{Down: true, X: tp.X, Y: tp.Y, TouchID: tp.ID, IsTouch: true}
			}
		}
		return PointerSample{TouchID: dm.info.TouchID, IsTouch: true}
	}

	if len(touches) > 0 {
		tp := touches[0]
		return PointerSample{Down: true, X: tp.X, Y: tp.Y, TouchID: tp.ID, IsTouch: true}
	}
	return mouse
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// Position 当前指针位置，拖拽结束后为释放位置
func (dm *DragManager) Position() (x, y int) {
	return dm.info.CurrentX, dm.info.CurrentY
}

// CursorPosition 悬停检测用的指针位置（触摸优先）
func CursorPosition() (x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
