package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene 记录转发到场景的调用
type recordingScene struct {
	name    string
	updates []float64
	draws   int
}

func (r *recordingScene) Update(deltaTime float64) {
	r.updates = append(r.updates, deltaTime)
}

func (r *recordingScene) Draw(screen *ebiten.Image) {
	r.draws++
}

func TestSceneManagerEmpty(t *testing.T) {
	sm := NewSceneManager()
	if sm.HasScene() || sm.GetCurrentScene() != nil {
		t.Fatal("new manager should have no active scene")
	}

	// 没有活动场景时转发是空操作
	sm.Update(1.0 / 60)
	sm.Draw(ebiten.NewImage(16, 16))
}

func TestSceneManagerForwardsToActiveScene(t *testing.T) {
	sm := NewSceneManager()
	editor := &recordingScene{name: "editor"}
	sm.SwitchTo(editor)

	screen := ebiten.NewImage(64, 64)
	for i := 0; i < 3; i++ {
		sm.Update(1.0 / 60)
		sm.Draw(screen)
	}

	if len(editor.updates) != 3 || editor.draws != 3 {
		t.Errorf("updates = %d, draws = %d, want 3 and 3", len(editor.updates), editor.draws)
	}
	if editor.updates[0] != 1.0/60 {
		t.Errorf("deltaTime = %v, want 1/60", editor.updates[0])
	}
}

func TestSceneManagerSwitchTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to Scene
	}{
		{name: "从空到场景", from: nil, to: &recordingScene{name: "editor"}},
		{name: "场景之间切换", from: &recordingScene{name: "editor"}, to: &recordingScene{name: "preview"}},
		{name: "切换到 nil 清空", from: &recordingScene{name: "editor"}, to: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			if tt.from != nil {
				sm.SwitchTo(tt.from)
			}

			prev := sm.SwitchTo(tt.to)
			if prev != tt.from {
				t.Errorf("SwitchTo returned %v, want %v", prev, tt.from)
			}
			if sm.GetCurrentScene() != tt.to {
				t.Errorf("GetCurrentScene() = %v, want %v", sm.GetCurrentScene(), tt.to)
			}
			if sm.HasScene() != (tt.to != nil) {
				t.Errorf("HasScene() = %v", sm.HasScene())
			}
		})
	}
}

func TestSceneManagerOnlyActiveSceneUpdates(t *testing.T) {
	sm := NewSceneManager()
	old := &recordingScene{name: "old"}
	next := &recordingScene{name: "next"}

	sm.SwitchTo(old)
	sm.Update(0.5)
	sm.SwitchTo(next)
	sm.Update(0.25)

	if len(old.updates) != 1 || len(next.updates) != 1 {
		t.Fatalf("old updates = %d, next updates = %d, want 1 and 1", len(old.updates), len(next.updates))
	}
	if next.updates[0] != 0.25 {
		t.Errorf("next scene deltaTime = %v, want 0.25", next.updates[0])
	}
}
