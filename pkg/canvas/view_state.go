package canvas

// NoIndex 表示没有悬停或弹出的瓦片
const NoIndex = -1

// ViewState 编辑器的界面状态（悬停、弹出预览、状态栏）
//
// 由编辑器场景持有，以指针传给绘制代码，不使用全局变量。
type ViewState struct {
	HoverIndex   int    // 调色板中鼠标悬停的瓦片索引
	PopoverIndex int    // 显示放大预览的瓦片索引
	Status       string // 状态栏文字
}

// NewViewState 返回初始界面状态
func NewViewState() *ViewState {
	return &ViewState{
		HoverIndex:   NoIndex,
		PopoverIndex: NoIndex,
	}
}

// SetHover 更新悬停索引，弹出预览跟随悬停目标
func (v *ViewState) SetHover(index int) {
	v.HoverIndex = index
	v.PopoverIndex = index
}

// ClearHover 清除悬停和弹出预览
func (v *ViewState) ClearHover() {
	v.SetHover(NoIndex)
}
