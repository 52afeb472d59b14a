package utils

import (
	"testing"
)

func mouse(down bool, x, y int) PointerSample {
	return PointerSample{Down: down, X: x, Y: y, TouchID: -1}
}

func TestDragManagerInitialState(t *testing.T) {
	dm := NewDragManager()

	if dm.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dm.GetState())
	}
	if dm.IsDragging() || dm.JustStarted() || dm.JustEnded() {
		t.Error("Expected no drag flags initially")
	}
	if dm.GetInfo().TouchID != -1 {
		t.Errorf("Expected TouchID -1, got %d", dm.GetInfo().TouchID)
	}
}

func TestDragManagerStateTransitions(t *testing.T) {
	dm := NewDragManager()

	steps := []struct {
		name      string
		sample    PointerSample
		wantState DragState
		wantX     int
		wantY     int
	}{
		{name: "未按下保持空闲", sample: mouse(false, 5, 5), wantState: DragStateNone, wantX: 0, wantY: 0},
		{name: "按下开始", sample: mouse(true, 10, 20), wantState: DragStateStarted, wantX: 10, wantY: 20},
		{name: "按住移动", sample: mouse(true, 30, 40), wantState: DragStateDragging, wantX: 30, wantY: 40},
		{name: "继续移动", sample: mouse(true, 50, 18), wantState: DragStateDragging, wantX: 50, wantY: 18},
		{name: "释放结束并保留最后位置", sample: mouse(false, 999, 999), wantState: DragStateEnded, wantX: 50, wantY: 18},
		{name: "结束后下一帧重置", sample: mouse(false, 0, 0), wantState: DragStateNone, wantX: 0, wantY: 0},
	}

	for _, step := range steps {
		dm.Advance(step.sample)
		if dm.GetState() != step.wantState {
			t.Fatalf("%s: state = %v, want %v", step.name, dm.GetState(), step.wantState)
		}
		x, y := dm.Position()
		if x != step.wantX || y != step.wantY {
			t.Errorf("%s: position = (%d, %d), want (%d, %d)", step.name, x, y, step.wantX, step.wantY)
		}
	}
}

func TestDragManagerQuickClick(t *testing.T) {
	dm := NewDragManager()

	dm.Advance(mouse(true, 10, 10))
	dm.Advance(mouse(false, 10, 10))

	if !dm.JustEnded() {
		t.Errorf("press then release should end the drag, got %v", dm.GetState())
	}
	info := dm.GetInfo()
	if info.StartX != 10 || info.CurrentX != 10 {
		t.Errorf("info = %+v", info)
	}
}

func TestDragManagerTouch(t *testing.T) {
	dm := NewDragManager()

	dm.Advance(PointerSample{Down: true, X: 1, Y: 2, TouchID: 7, IsTouch: true})
	if !dm.GetInfo().IsTouchInput || dm.GetInfo().TouchID != 7 {
		t.Errorf("touch info not recorded: %+v", dm.GetInfo())
	}
}

func TestDragManagerReset(t *testing.T) {
	dm := NewDragManager()
	dm.Advance(mouse(true, 100, 200))
	dm.Advance(mouse(true, 150, 250))

	dm.Reset()

	if dm.GetState() != DragStateNone {
		t.Errorf("Expected state to be DragStateNone after reset, got %v", dm.GetState())
	}
	info := dm.GetInfo()
	if info.StartX != 0 || info.CurrentY != 0 || info.TouchID != -1 {
		t.Errorf("Expected zero info after reset, got %+v", info)
	}
}

func TestDragStateString(t *testing.T) {
	if DragStateDragging.String() != "dragging" || DragState(42).String() != "unknown" {
		t.Error("unexpected DragState.String() output")
	}
}

func TestChoosePointerPinsInputSource(t *testing.T) {
	touch := []TouchPoint{{ID: 3, X: 400, Y: 300}}

	tests := []struct {
		name    string
		start   PointerSample // 第一帧，决定输入源
		touches []TouchPoint
		mouse   PointerSample
		want    PointerSample
	}{
		{
			name:  "空闲时触摸优先",
			start: PointerSample{TouchID: -1}, touches: touch, mouse: mouse(true, 10, 10),
			want: PointerSample{Down: true, X: 400, Y: 300, TouchID: 3, IsTouch: true},
		},
		{
			name:  "鼠标拖拽中出现触摸仍跟踪鼠标",
			start: mouse(true, 10, 10), touches: touch, mouse: mouse(true, 20, 25),
			want: mouse(true, 20, 25),
		},
		{
			name:  "鼠标拖拽中触摸不能阻止释放",
			start: mouse(true, 10, 10), touches: touch, mouse: mouse(false, 20, 25),
			want: mouse(false, 20, 25),
		},
		{
			name:    "触摸拖拽只跟踪同一个 ID",
			start:   PointerSample{Down: true, X: 1, Y: 1, TouchID: 5, IsTouch: true},
			touches: []TouchPoint{{ID: 3, X: 400, Y: 300}, {ID: 5, X: 60, Y: 70}},
			mouse:   mouse(true, 10, 10),
			want:    PointerSample{Down: true, X: 60, Y: 70, TouchID: 5, IsTouch: true},
		},
		{
			name:    "跟踪的触摸消失视为释放",
			start:   PointerSample{Down: true, X: 1, Y: 1, TouchID: 5, IsTouch: true},
			touches: touch,
			mouse:   mouse(true, 10, 10),
			want:    PointerSample{TouchID: 5, IsTouch: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDragManager()
			dm.Advance(tt.start)

			got := dm.choosePointer(tt.touches, tt.mouse)
			if got != tt.want {
				t.Errorf("choosePointer() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
