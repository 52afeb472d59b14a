package scenes

import (
	"errors"
	"io"
	"log"

	"github.com/gonewx/tilecraft/pkg/canvas"
	"github.com/gonewx/tilecraft/pkg/config"
	"github.com/gonewx/tilecraft/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// toolbarButton 工具栏按钮
type toolbarButton struct {
	label   string
	rect    utils.Rect
	enabled bool
	onClick func()
}

func (b *toolbarButton) activate() {
	if !b.enabled || b.onClick == nil {
		return
	}
	b.onClick()
}

// buildToolbar 创建工具栏：导出（未实现）、清空、前景层（禁用）
// 按钮从画布左边缘开始横向排列
func (s *EditorScene) buildToolbar() []*toolbarButton {
	ready := s.state == StateReady
	buttons := []*toolbarButton{
		{label: "Export Map", enabled: ready, onClick: s.exportMap},
		{label: "Clear", enabled: ready, onClick: s.clearCanvas},
		// 前景层只是占位，始终禁用
		{label: "Foreground", enabled: false},
	}

	x := s.canvasRect.X
	for _, b := range buttons {
		w := s.measureLabel(b.label) + 2*config.ToolbarButtonPadding
		b.rect = utils.Rect{X: x, Y: config.ToolbarY, W: w, H: config.ToolbarButtonHeight}
		x += w + config.ToolbarButtonGap
	}
	return buttons
}

// measureLabel 测量按钮文字宽度，没有字体时按等宽估算
func (s *EditorScene) measureLabel(label string) float64 {
	if s.labelFace == nil {
		return float64(len(label)) * 7
	}
	w, _ := text.Measure(label, s.labelFace, 0)
	return w
}

// buttonAt 返回坐标处的按钮
func (s *EditorScene) buttonAt(x, y float64) *toolbarButton {
	for _, b := range s.toolbar {
		if b.rect.Contains(x, y) {
			return b
		}
	}
	return nil
}

func (s *EditorScene) exportMap() {
	err := s.canvas.Export(io.Discard)
	switch {
	case errors.Is(err, canvas.ErrExportNotImplemented):
		s.view.Status = "Export is not implemented yet"
	case err != nil:
		s.view.Status = "Export failed: " + err.Error()
	default:
		s.view.Status = "Map exported"
	}
	log.Printf("[EditorScene] Export Map: %v", err)
}

func (s *EditorScene) clearCanvas() {
	s.canvas.Clear()
	s.view.Status = "Canvas cleared"
}
