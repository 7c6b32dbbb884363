// Package raster draws strip scenes into PNG bitmaps.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"
	"stampcard/internal/domain/strip"
	"stampcard/internal/errors"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	shadowAlpha  = 0.25
	shadowOffset = 0.04
	outlineRatio = 0.82
	sidePaneDim  = 0.1
)

// ErrEmptyScene is returned for a nil scene or a zero-sized canvas.
var ErrEmptyScene = errors.New("scene has no canvas")

type rasterizer struct {
	face    *basicfont.Face
	encoder png.Encoder
}

// NewRasterizer creates a StripRasterizer. Remote images referenced by a
// scene are not fetched; cells fall back to their vector icon so the same
// scene always encodes to the same bytes.
func NewRasterizer() service.StripRasterizer {
	return &rasterizer{
		face:    basicfont.Face7x13,
		encoder: png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Rasterize paints scene and encodes it as PNG.
func (r *rasterizer) Rasterize(scene *strip.Scene) ([]byte, error) {
	if scene == nil || scene.Width <= 0 || scene.Height <= 0 {
		return nil, ErrEmptyScene
	}

	img := image.NewRGBA(image.Rect(0, 0, scene.Width, scene.Height))

	paintGradient(img, parseColor(scene.Background.From, strip.DefaultBackground), parseColor(scene.Background.To, strip.DefaultBackground))
	if scene.SidePane != nil {
		dim := color.NRGBA{A: uint8(math.Round(sidePaneDim * 255))}
		draw.Draw(img, rectOf(*scene.SidePane), image.NewUniform(dim), image.Point{}, draw.Over)
	}

	for _, cell := range scene.Cells {
		if !cell.Visible {
			continue
		}
		r.paintCell(img, cell)
	}

	r.paintText(img, scene.Title)
	r.paintText(img, scene.Counter)
	r.paintText(img, scene.Reward)

	var buf bytes.Buffer
	if err := r.encoder.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encode strip png")
	}

	return buf.Bytes(), nil
}

func paintGradient(img *image.RGBA, from, to color.RGBA) {
	b := img.Bounds()
	span := float64(max(b.Dy()-1, 1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / span
		c := color.RGBA{
			R: lerp8(from.R, to.R, t),
			G: lerp8(from.G, to.G, t),
			B: lerp8(from.B, to.B, t),
			A: 0xff,
		}
		draw.Draw(img, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func (r *rasterizer) paintCell(img *image.RGBA, cell strip.CellDraw) {
	cx := cell.Box.X + cell.Box.W/2
	cy := cell.Box.Y + cell.Box.H/2
	radius := cell.IconSize / 2
	if radius <= 0 {
		return
	}

	outline := cell.Fill == ""
	hex := cell.Fill
	if outline {
		hex = cell.Stroke
	}
	c := parseColor(hex, strip.DefaultStampInactive)

	if cell.DropShadow {
		off := cell.Box.W * shadowOffset
		shadow := color.NRGBA{A: uint8(math.Round(shadowAlpha * cell.Opacity * 255))}
		fillShape(img, cell.Icon, cx+off, cy+off, radius, outline, shadow)
	}

	fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(cell.Opacity * 255))}
	fillShape(img, cell.Icon, cx, cy, radius, outline, fill)
}

// fillShape draws icon centered at (cx, cy). An outline is the shape minus
// a smaller copy traced in the opposite direction.
func fillShape(img *image.RGBA, icon entity.StampIcon, cx, cy, radius float64, outline bool, c color.NRGBA) {
	margin := radius * 1.5
	box := image.Rect(
		int(math.Floor(cx-margin)),
		int(math.Floor(cy-margin)),
		int(math.Ceil(cx+margin)),
		int(math.Ceil(cy+margin)),
	)
	if box.Empty() {
		return
	}

	// paths are traced relative to the box origin
	ox, oy := cx-float64(box.Min.X), cy-float64(box.Min.Y)
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	trace(z, icon, ox, oy, radius, false)
	if outline {
		trace(z, icon, ox, oy, radius*outlineRatio, true)
	}

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	draw.DrawMask(img, box, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

func trace(z *vector.Rasterizer, icon entity.StampIcon, cx, cy, r float64, reverse bool) {
	switch icon {
	case entity.IconStar:
		polygon(z, starPoints(cx, cy, r), reverse)
	case entity.IconHeart:
		heart(z, cx, cy, r, reverse)
	case entity.IconCheck:
		polygon(z, checkPoints(cx, cy, r), reverse)
	case entity.IconCoffee:
		polygon(z, cupPoints(cx, cy, r), reverse)
	default:
		circle(z, cx, cy, r, reverse)
	}
}

func polygon(z *vector.Rasterizer, pts [][2]float64, reverse bool) {
	if reverse {
		rev := make([][2]float64, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}
		pts = rev
	}

	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
}

// circle approximates a circle with four cubic Béziers.
func circle(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	const k = 0.5522847498
	d := r * k
	sign := 1.0
	if reverse {
		sign = -1
	}

	f := func(v float64) float32 { return float32(v) }
	z.MoveTo(f(cx+r), f(cy))
	z.CubeTo(f(cx+r), f(cy+sign*d), f(cx+d), f(cy+sign*r), f(cx), f(cy+sign*r))
	z.CubeTo(f(cx-d), f(cy+sign*r), f(cx-r), f(cy+sign*d), f(cx-r), f(cy))
	z.CubeTo(f(cx-r), f(cy-sign*d), f(cx-d), f(cy-sign*r), f(cx), f(cy-sign*r))
	z.CubeTo(f(cx+d), f(cy-sign*r), f(cx+r), f(cy-sign*d), f(cx+r), f(cy))
	z.ClosePath()
}

func heart(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	f := func(v float64) float32 { return float32(v) }
	top := cy - r*0.45
	bottom := cy + r*0.9

	z.MoveTo(f(cx), f(bottom))
	if !reverse {
		z.CubeTo(f(cx-r*1.3), f(cy+r*0.1), f(cx-r*0.9), f(cy-r*1.2), f(cx), f(top))
		z.CubeTo(f(cx+r*0.9), f(cy-r*1.2), f(cx+r*1.3), f(cy+r*0.1), f(cx), f(bottom))
	} else {
		z.CubeTo(f(cx+r*1.3), f(cy+r*0.1), f(cx+r*0.9), f(cy-r*1.2), f(cx), f(top))
		z.CubeTo(f(cx-r*0.9), f(cy-r*1.2), f(cx-r*1.3), f(cy+r*0.1), f(cx), f(bottom))
	}
	z.ClosePath()
}

func starPoints(cx, cy, r float64) [][2]float64 {
	inner := r * 0.45
	pts := make([][2]float64, 0, 10)
	for i := range 10 {
		radius := r
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, [2]float64{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)})
	}

	return pts
}

func checkPoints(cx, cy, r float64) [][2]float64 {
	t := r * 0.28

	return [][2]float64{
		{cx - r, cy},
		{cx - r*0.35, cy + r*0.6},
		{cx + r, cy - r*0.7},
		{cx + r - t*0.7, cy - r*0.7 - t*0.7},
		{cx - r*0.35, cy + r*0.6 - t*1.4},
		{cx - r + t*0.7, cy - t*0.7},
	}
}

// cupPoints is a mug body with a square handle on the right.
func cupPoints(cx, cy, r float64) [][2]float64 {
	return [][2]float64{
		{cx - r, cy - r*0.6},
		{cx + r*0.55, cy - r*0.6},
		{cx + r*0.55, cy - r*0.35},
		{cx + r, cy - r*0.35},
		{cx + r, cy + r*0.25},
		{cx + r*0.55, cy + r*0.25},
		{cx + r*0.4, cy + r*0.8},
		{cx - r*0.85, cy + r*0.8},
	}
}

// paintText draws t with the bitmap face scaled to t.Size pixels.
func (r *rasterizer) paintText(img *image.RGBA, t strip.Text) {
	if t.Text == "" || t.Size <= 0 {
		return
	}

	metrics := r.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()

	advance := font.MeasureString(r.face, t.Text).Ceil()
	if advance <= 0 {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, advance, lineHeight))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(t.Text)

	scale := t.Size / float64(lineHeight)
	w := max(int(math.Round(float64(advance)*scale)), 1)
	h := max(int(math.Round(float64(lineHeight)*scale)), 1)
	scaled := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)

	x := int(math.Round(t.X))
	y := int(math.Round(t.Y - float64(ascent)*scale))
	dst := image.Rect(x, y, x+w, y+h)

	c := parseColor(t.Color, strip.DefaultForeground)
	draw.DrawMask(img, dst, image.NewUniform(c), image.Point{}, scaled, image.Point{}, draw.Over)
}

func rectOf(r strip.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	)
}

func parseColor(hex, fallback string) color.RGBA {
	c, err := strip.ParseHexColor(hex)
	if err != nil {
		c, _ = strip.ParseHexColor(fallback)
	}

	return c
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
