package config

import (
	"fmt"
	"os"

	"github.com/gonewx/tilecraft/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultEditorConfigPath 内置编辑器配置文件路径
const DefaultEditorConfigPath = "data/editor.yaml"

// WindowConfig 窗口设置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度
	Height int    `yaml:"height"` // 逻辑屏幕高度
	Title  string `yaml:"title"`  // 窗口标题
}

// TileConfig 瓦片尺寸（像素）
type TileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaletteConfig 左侧调色板面板布局
type PaletteConfig struct {
	X       float64 `yaml:"x"`       // 面板左上角 X
	Y       float64 `yaml:"y"`       // 面板左上角 Y
	Columns int     `yaml:"columns"` // 每行显示的瓦片数
	Scale   float64 `yaml:"scale"`   // 瓦片绘制缩放
	Spacing float64 `yaml:"spacing"` // 瓦片之间的间距
}

// CanvasConfig 右侧放置画布区域
type CanvasConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// EditorConfig 编辑器配置文件结构（data/editor.yaml）
type EditorConfig struct {
	Window      WindowConfig  `yaml:"window"`
	SpriteSheet string        `yaml:"spriteSheet"` // 精灵图资源路径
	Tile        TileConfig    `yaml:"tile"`
	Palette     PaletteConfig `yaml:"palette"`
	Canvas      CanvasConfig  `yaml:"canvas"`
}

// DefaultEditorConfig 返回内置默认配置
// 与 data/editor.yaml 保持一致，配置文件缺失字段时以此为基础
func DefaultEditorConfig() *EditorConfig {
	return &EditorConfig{
		Window: WindowConfig{
			Width:  1024,
			Height: 640,
			Title:  "Tilecraft - Sprite Sheet Map Composer",
		},
		SpriteSheet: "assets/images/tileset.png",
		Tile:        TileConfig{Width: 32, Height: 32},
		Palette: PaletteConfig{
			X:       8,
			Y:       48,
			Columns: 4,
			Scale:   1.5,
			Spacing: 6,
		},
		Canvas: CanvasConfig{
			X:      240,
			Y:      48,
			Width:  768,
			Height: 576,
		},
	}
}

// LoadEditorConfig 加载编辑器配置
//
// 以 "assets/" 或 "data/" 开头的路径从嵌入资源读取，其他路径从磁盘读取
// （用于 --config 指定的用户配置文件）。未出现在文件中的字段保留默认值。
//
// 返回：
//   - *EditorConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败
func LoadEditorConfig(path string) (*EditorConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read editor config %s: %w", path, err)
	}

	cfg := DefaultEditorConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse editor config YAML from %s: %w", path, err)
	}

	if err := validateEditorConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid editor config in %s: %w", path, err)
	}

	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsEmbeddedPath(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// validateEditorConfig 验证配置的合法性
func validateEditorConfig(cfg *EditorConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	if cfg.SpriteSheet == "" {
		return fmt.Errorf("spriteSheet is required")
	}

	if cfg.Tile.Width <= 0 || cfg.Tile.Height <= 0 {
		return fmt.Errorf("tile size must be positive, got %dx%d", cfg.Tile.Width, cfg.Tile.Height)
	}

	if cfg.Palette.Columns < 1 {
		return fmt.Errorf("palette columns must be at least 1, got %d", cfg.Palette.Columns)
	}
	if cfg.Palette.Scale <= 0 {
		return fmt.Errorf("palette scale must be positive, got %v", cfg.Palette.Scale)
	}
	if cfg.Palette.Spacing < 0 {
		return fmt.Errorf("palette spacing cannot be negative, got %v", cfg.Palette.Spacing)
	}

	if cfg.Canvas.Width < cfg.Tile.Width || cfg.Canvas.Height < cfg.Tile.Height {
		return fmt.Errorf("canvas %dx%d is smaller than one tile (%dx%d)",
			cfg.Canvas.Width, cfg.Canvas.Height, cfg.Tile.Width, cfg.Tile.Height)
	}

	return nil
}
