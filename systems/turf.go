package systems

import (
	"image/color"

	"github.com/aquilax/go-perlin"
	cfg "github.com/automoto/coulomb-golf/config"
	"github.com/automoto/coulomb-golf/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	turfScale = 4 // screen pixels per noise sample
	turfFreq  = 24.0
	turfSeed  = 7
)

var (
	turfImg    *ebiten.Image
	turfW      int
	turfH      int
	turfDrawOp = &ebiten.DrawImageOptions{}
)

// turfPixels returns RGBA bytes for a w*h patch of perlin turf blended
// between the dark and light grass colors.
func turfPixels(w, h int, seed int64) []byte {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	pix := make([]byte, w*h*4)
	dark, light := cfg.HUD.TurfDark, cfg.HUD.TurfLight
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := noise.Noise2D(float64(x)/turfFreq, float64(y)/turfFreq)
			c := lerpColor(dark, light, gamemath.Clamp((n+1)/2, 0, 1))
			i := (y*w + x) * 4
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = 255
		}
	}
	return pix
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// turfImage returns the background for a w*h screen, rebuilding it after a resize.
func turfImage(w, h int) *ebiten.Image {
	if turfImg != nil && turfW == w && turfH == h {
		return turfImg
	}
	if turfImg != nil {
		turfImg.Deallocate()
	}

	lw := max(w/turfScale+1, 1)
	lh := max(h/turfScale+1, 1)
	low := ebiten.NewImage(lw, lh)
	low.WritePixels(turfPixels(lw, lh, turfSeed))

	turfImg = ebiten.NewImage(w, h)
	turfDrawOp.GeoM.Reset()
	turfDrawOp.GeoM.Scale(turfScale, turfScale)
	turfDrawOp.Filter = ebiten.FilterLinear
	turfImg.DrawImage(low, turfDrawOp)
	low.Deallocate()

	turfW, turfH = w, h
	return turfImg
}
