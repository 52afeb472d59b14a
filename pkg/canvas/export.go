package canvas

import (
	"errors"
	"io"
	"log"
)

// ErrExportNotImplemented 地图导出尚未实现
var ErrExportNotImplemented = errors.New("map export is not implemented")

// Exporter 地图导出扩展点
// 目前没有定义任何文件格式，Canvas 的实现不会写入数据
type Exporter interface {
	Export(w io.Writer) error
}

var _ Exporter = (*Canvas)(nil)

// Export 记录导出请求并返回 ErrExportNotImplemented，w 不会被写入
func (c *Canvas) Export(w io.Writer) error {
	log.Printf("[Canvas] Export requested for %d placed tiles: not implemented", len(c.placed))
	return ErrExportNotImplemented
}
