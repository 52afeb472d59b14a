package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可切换的编辑器画面
//
// Update 接收距上一帧的秒数；Draw 只读取场景状态，不修改它。
type Scene interface {
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}
