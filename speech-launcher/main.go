package main

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	launcher "github.com/nobonobo/speech-launcher"
)

func main() {
	if err := launcher.Setup(); err != nil {
		log.Fatal(err)
	}
	log.Printf("config: %#v", launcher.Config)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e := launcher.New(ctx, &launcher.Publisher{
		Dir:     launcher.Config.TempDir,
		Pattern: launcher.Config.Pattern,
		Opener:  launcher.DefaultOpener(),
	})
	ebiten.SetWindowTitle(launcher.Config.Title)
	ebiten.SetWindowSize(launcher.Config.Width, launcher.Config.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newWindow(launcher.NewForm(e))); err != nil {
		log.Fatal(err)
	}
	log.Println("done")
}
