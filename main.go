package main

import (
	"log"
	"os"

	"github.com/gonewx/tilecraft/pkg/app"
	"github.com/gonewx/tilecraft/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func main() {
	cliApp := &cli.App{
		Name:    "tilecraft",
		Usage:   "slice a sprite sheet into tiles and compose a grid map",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to an editor config YAML (defaults to the embedded data/editor.yaml)",
			},
			&cli.StringFlag{
				Name:    "sheet",
				Aliases: []string{"s"},
				Usage:   "sprite sheet to slice, overrides the config file",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	editor, err := app.NewApp(app.Config{
		Verbose:     c.Bool("verbose"),
		ConfigPath:  c.String("config"),
		SpriteSheet: c.String("sheet"),
	})
	if err != nil {
		return cli.Exit(err, 1)
	}

	window := editor.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(editor); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
