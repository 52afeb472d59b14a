package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前活动场景
// 每帧只把 Update/Draw 转发给这一个场景，没有活动场景时什么也不做。
type SceneManager struct {
	current Scene
}

// NewSceneManager 创建没有活动场景的管理器，由调用方用 SwitchTo 设置首个场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到 scene，返回之前的活动场景（可能为 nil）
// 传入 nil 会清空活动场景。
func (sm *SceneManager) SwitchTo(scene Scene) Scene {
	prev := sm.current
	sm.current = scene
	log.Printf("[SceneManager] Switched scene: %T -> %T", prev, scene)
	return prev
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// HasScene 是否有活动场景
func (sm *SceneManager) HasScene() bool {
	return sm.current != nil
}

// Update 把一帧的逻辑更新转发给活动场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

// Draw 把绘制转发给活动场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
