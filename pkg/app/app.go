// Package app 提供编辑器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、创建资源管理器和编辑器场景，
// 并实现 ebiten.Game 接口。main.go 解析命令行参数后调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/tilecraft/pkg/config"
	"github.com/gonewx/tilecraft/pkg/game"
	"github.com/gonewx/tilecraft/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 编辑器配置文件路径，为空时使用内置 data/editor.yaml
	ConfigPath string
	// SpriteSheet 覆盖配置文件中的精灵图路径，为空则不覆盖
	SpriteSheet string
}

// App 是编辑器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	editorConfig *config.EditorConfig
	editorScene  *scenes.EditorScene
	verbose      bool
}

// NewApp 创建并初始化编辑器应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 精灵图缺失不是错误（编辑器显示 "Image not found"），配置文件错误才会返回 error。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultEditorConfigPath
	}

	editorConfig, err := config.LoadEditorConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("编辑器配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载编辑器配置: %s", configPath)

	if cfg.SpriteSheet != "" {
		editorConfig.SpriteSheet = cfg.SpriteSheet
		log.Printf("[App] Sprite sheet overridden: %s", cfg.SpriteSheet)
	}

	resourceManager := game.NewResourceManager()

	sceneManager := game.NewSceneManager()
	editorScene := scenes.NewEditorScene(resourceManager, editorConfig)
	sceneManager.SwitchTo(editorScene)
	log.Printf("[App] Editor scene started in state %s", editorScene.State())

	return &App{
		sceneManager: sceneManager,
		editorConfig: editorConfig,
		editorScene:  editorScene,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新编辑器逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制编辑器画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 窗口比例与逻辑尺寸不一致时用黑边填充，像素风瓦片使用最近邻缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.editorConfig.Window.Width, a.editorConfig.Window.Height
}

// WindowConfig 返回窗口设置，main 在 RunGame 之前使用
func (a *App) WindowConfig() config.WindowConfig {
	return a.editorConfig.Window
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// EditorScene 返回编辑器场景
func (a *App) EditorScene() *scenes.EditorScene {
	return a.editorScene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
