package config

import "image/color"

// 布局配置常量
// 编辑器界面中不随配置文件变化的 UI 参数：工具栏、标签、弹出预览、配色

// Toolbar 工具栏按钮配置
const (
	// ToolbarY 工具栏按钮的顶部 Y 坐标
	ToolbarY = 8.0

	// ToolbarButtonHeight 按钮高度
	ToolbarButtonHeight = 28.0

	// ToolbarButtonPadding 按钮文字左右留白
	ToolbarButtonPadding = 12.0

	// ToolbarButtonGap 相邻按钮的间距
	ToolbarButtonGap = 8.0
)

// 文字
const (
	// LabelFontSize 瓦片编号、按钮文字
	LabelFontSize = 12.0

	// TitleFontSize 面板标题、错误提示
	TitleFontSize = 18.0

	// PaletteTitleY 调色板标题 Y 坐标
	PaletteTitleY = 14.0
)

// 弹出预览
const (
	// PopoverScale 悬停瓦片放大倍数
	PopoverScale = 3.0

	// PopoverOffset 相对指针的偏移
	PopoverOffset = 16.0

	// DragPreviewAlpha 拖拽中浮动预览的透明度
	DragPreviewAlpha = 0.6
)

// 配色
var (
	BackgroundColor     = color.RGBA{R: 0x1e, G: 0x22, B: 0x2b, A: 0xff}
	PanelColor          = color.RGBA{R: 0x0b, G: 0x14, B: 0x2a, A: 0xff}
	GridLineColor       = color.RGBA{R: 0x5a, G: 0x63, B: 0x73, A: 0xff}
	HoverColor          = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ButtonColor         = color.RGBA{R: 0x33, G: 0x4a, B: 0x7a, A: 0xff}
	ButtonDisabledColor = color.RGBA{R: 0x3a, G: 0x3d, B: 0x44, A: 0xff}
	TextColor           = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	TextDisabledColor   = color.RGBA{R: 0x8a, G: 0x8d, B: 0x94, A: 0xff}
	ErrorTextColor      = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
)
