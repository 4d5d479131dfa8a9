package main

import (
	"flag"
	"log"

	"github.com/decker502/casualui/pkg/app"
	"github.com/decker502/casualui/pkg/config"
	"github.com/decker502/casualui/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细日志")
	dataPath = flag.String("data", "", "外部启动数据 YAML（默认使用内嵌数据）")
	blur     = flag.Bool("blur", true, "弹窗背景使用模糊截屏")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		DataPath: *dataPath,
		Blur:     *blur,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Casual UI")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
