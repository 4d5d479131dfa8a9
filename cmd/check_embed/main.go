// check_embed 校验将要嵌入的数据文件
//
// 用法：
//
//	go run ./cmd/check_embed [--root=.]
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/casualui/pkg/config"
	"github.com/decker502/casualui/pkg/embedded"
)

var root = flag.String("root", ".", "项目根目录（包含 data/）")

func main() {
	flag.Parse()
	embedded.Init(os.DirFS(*root))

	failed := false
	for _, path := range []string{config.InitGameDataPath, config.LanguagesPath} {
		data, err := embedded.ReadFile(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s MD5: %x (%d bytes)\n", path, md5.Sum(data), len(data))
	}

	if d, err := config.LoadInitGameData(""); err != nil {
		fmt.Printf("Error: %v\n", err)
		failed = true
	} else {
		fmt.Printf("init data: coins=%d lives=%d/%d stars=%d footer=%v\n",
			d.CoinsCount, d.LivesCount, d.MaxLivesCount, d.StarCount, d.FooterButtonsLockStates)
	}

	if langs, err := config.LoadLanguages(); err != nil {
		fmt.Printf("Error: %v\n", err)
		failed = true
	} else {
		for _, l := range langs {
			fmt.Printf("language %d: %s (%s)\n", l.Index, l.Name, l.Code)
		}
	}

	if failed {
		os.Exit(1)
	}
}
