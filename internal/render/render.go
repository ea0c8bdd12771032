// Package render draws multi-panel line charts of time series and spectra
// into an RGBA image suitable for PNG encoding.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultPanelWidth  = 480
	defaultPanelHeight = 280
	defaultColumns     = 2

	// Border sizes in pixels around each panel's plot area
	topBorder    = 28
	leftBorder   = 56
	bottomBorder = 36
	rightBorder  = 16

	tickMarkLength = 4
	pixelsPerXTick = 80
	pixelsPerYTick = 40
)

var (
	ErrNoPanels       = errors.New("render: no panels to draw")
	ErrLengthMismatch = errors.New("render: x and y lengths differ")
)

// Panel describes one chart in the grid: a titled series with its x axis.
type Panel struct {
	Title  string
	XLabel string
	X      []float64
	Y      []float64
}

// Config holds the visual options of a [Renderer]. Zero values select
// defaults.
type Config struct {
	PanelWidth  int
	PanelHeight int
	Columns     int
	LineColor   color.RGBA
}

// Renderer lays out panels in a grid and draws each as a line chart with
// axes, tick marks, and labels.
type Renderer struct {
	config Config
	face   font.Face
}

// NewRenderer creates a renderer with defaults filled in for zero config
// values.
func NewRenderer(config Config) *Renderer {
	if config.PanelWidth == 0 {
		config.PanelWidth = defaultPanelWidth
	}
	if config.PanelHeight == 0 {
		config.PanelHeight = defaultPanelHeight
	}
	if config.Columns == 0 {
		config.Columns = defaultColumns
	}
	if config.LineColor == (color.RGBA{}) {
		config.LineColor = color.RGBA{R: 0x1f, G: 0x4e, B: 0xb0, A: 0xff}
	}

	return &Renderer{
		config: config,
		face:   basicfont.Face7x13,
	}
}

// Render draws all panels into one image, filling the grid row by row.
func (r *Renderer) Render(panels []Panel) (*image.RGBA, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	for _, p := range panels {
		if len(p.X) != len(p.Y) {
			return nil, ErrLengthMismatch
		}
	}

	cols := r.config.Columns
	rows := (len(panels) + cols - 1) / cols

	img := image.NewRGBA(image.Rect(0, 0, cols*r.config.PanelWidth, rows*r.config.PanelHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, p := range panels {
		originX := (i % cols) * r.config.PanelWidth
		originY := (i / cols) * r.config.PanelHeight
		r.drawPanel(img, originX, originY, p)
	}

	return img, nil
}

func (r *Renderer) drawPanel(img *image.RGBA, originX, originY int, p Panel) {
	plot := image.Rect(
		originX+leftBorder,
		originY+topBorder,
		originX+r.config.PanelWidth-rightBorder,
		originY+r.config.PanelHeight-bottomBorder,
	)

	r.drawTitle(img, originX, originY, p.Title)
	r.drawXLabel(img, originX, originY, p.XLabel)

	// Axis frame
	drawHLine(img, plot.Min.X, plot.Max.X, plot.Max.Y, color.Black)
	drawVLine(img, plot.Min.X, plot.Min.Y, plot.Max.Y, color.Black)

	if len(p.X) == 0 {
		return
	}

	xMin, xMax := bounds(p.X)
	yMin, yMax := bounds(p.Y)
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMin, yMax = yMin-1, yMax+1
	}

	r.drawXTicks(img, plot, xMin, xMax)
	r.drawYTicks(img, plot, yMin, yMax)
	r.drawSeries(img, plot, p, xMin, xMax, yMin, yMax)
}

func (r *Renderer) drawSeries(img *image.RGBA, plot image.Rectangle, p Panel, xMin, xMax, yMin, yMax float64) {
	toPixel := func(x, y float64) (int, int) {
		px := plot.Min.X + int(math.Round((x-xMin)/(xMax-xMin)*float64(plot.Dx()-1)))
		py := plot.Max.Y - int(math.Round((y-yMin)/(yMax-yMin)*float64(plot.Dy()-1)))
		return px, py
	}

	prevX, prevY := toPixel(p.X[0], p.Y[0])
	img.Set(prevX, prevY, r.config.LineColor)
	for i := 1; i < len(p.X); i++ {
		px, py := toPixel(p.X[i], p.Y[i])
		drawLine(img, prevX, prevY, px, py, r.config.LineColor)
		prevX, prevY = px, py
	}
}

func (r *Renderer) drawXTicks(img *image.RGBA, plot image.Rectangle, xMin, xMax float64) {
	step := niceStep(xMax-xMin, plot.Dx()/pixelsPerXTick)
	start := math.Ceil(xMin/step) * step

	for v := start; v <= xMax+step/1e6; v += step {
		x := plot.Min.X + int((v-xMin)/(xMax-xMin)*float64(plot.Dx()-1))
		for y := plot.Max.Y; y < plot.Max.Y+tickMarkLength; y++ {
			img.Set(x, y, color.Black)
		}

		label := formatTick(v, step)
		width := font.MeasureString(r.face, label).Round()
		r.drawString(img, x-width/2, plot.Max.Y+tickMarkLength+r.face.Metrics().Ascent.Round()+1, label)
	}
}

func (r *Renderer) drawYTicks(img *image.RGBA, plot image.Rectangle, yMin, yMax float64) {
	step := niceStep(yMax-yMin, plot.Dy()/pixelsPerYTick)
	start := math.Ceil(yMin/step) * step

	for v := start; v <= yMax+step/1e6; v += step {
		y := plot.Max.Y - int((v-yMin)/(yMax-yMin)*float64(plot.Dy()-1))
		for x := plot.Min.X - tickMarkLength; x < plot.Min.X; x++ {
			img.Set(x, y, color.Black)
		}

		label := formatTick(v, step)
		width := font.MeasureString(r.face, label).Round()
		metrics := r.face.Metrics()
		r.drawString(img, plot.Min.X-tickMarkLength-width-3, y+(metrics.Ascent-metrics.Descent).Round()/2, label)
	}
}

func (r *Renderer) drawTitle(img *image.RGBA, originX, originY int, title string) {
	if title == "" {
		return
	}
	width := font.MeasureString(r.face, title).Round()
	x := originX + (r.config.PanelWidth-width)/2
	r.drawString(img, x, originY+topBorder/2+r.face.Metrics().Descent.Round(), title)
}

func (r *Renderer) drawXLabel(img *image.RGBA, originX, originY int, label string) {
	if label == "" {
		return
	}
	width := font.MeasureString(r.face, label).Round()
	x := originX + (r.config.PanelWidth-width)/2
	r.drawString(img, x, originY+r.config.PanelHeight-4, label)
}

func (r *Renderer) drawString(img *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Helper functions

func bounds(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// niceStep returns a 1-2-5 decade step producing at most maxTicks intervals
// over the given span.
func niceStep(span float64, maxTicks int) float64 {
	if maxTicks < 1 {
		maxTicks = 1
	}
	rough := span / float64(maxTicks)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))

	for _, m := range []float64{1, 2, 5} {
		if m*magnitude >= rough {
			return m * magnitude
		}
	}
	return 10 * magnitude
}

func formatTick(v, step float64) string {
	if math.Abs(v) < step/1e6 {
		v = 0
	}
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step)))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func drawHLine(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func drawVLine(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

// drawLine draws a straight segment using Bresenham's algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
