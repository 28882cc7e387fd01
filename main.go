package main

import (
	"image"
	"log"

	"github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/fonts"
	"github.com/automoto/coulomb-golf/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// resizer is implemented by scenes that follow the window size
type resizer interface {
	Resize(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
	g.resizeScene()
}

func NewGame() *Game {
	mustLoad(fonts.LoadFont(fonts.Regular, goregular.TTF))
	mustLoad(fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, 20))
	mustLoad(fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 40))
	mustLoad(fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12))

	g := &Game{
		bounds: image.Rect(0, 0, config.C.Width, config.C.Height),
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewCourseScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func mustLoad(err error) {
	if err != nil {
		panic(err)
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 && (width != g.bounds.Dx() || height != g.bounds.Dy()) {
		g.bounds = image.Rect(0, 0, width, height)
		config.C.Width, config.C.Height = width, height
		g.resizeScene()
	}
	return g.bounds.Dx(), g.bounds.Dy()
}

func (g *Game) resizeScene() {
	if r, ok := g.scene.(resizer); ok {
		r.Resize(g.bounds.Dx(), g.bounds.Dy())
	}
}

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		log.Printf("Warning: %v", err)
	}

	ebiten.SetWindowTitle("Coulomb Golf")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
