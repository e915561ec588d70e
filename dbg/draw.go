package dbg

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/seidel/engine"
)

// dbgDrawPadding is the margin around the shape, so unbounded trapezoids
// (whose top or bottom runs off to infinity) still draw something visible.
const dbgDrawPadding = 100

var inverseMatrixForContext = map[*gg.Context]gg.Matrix{}

// DrawTrapezoids renders every live trapezoid of t to a PNG and, if running
// under iTerm, prints it inline in the terminal. It's a debugging aid, not
// part of the triangulator's public contract.
func DrawTrapezoids(t *engine.Triangulator, scale float64) {
	points := t.Points()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, like the
	// polygon's own Y axis.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// gg exposes no matrix inverse, so keep the one we'd need to map a
	// canvas-space bound back into polygon space for drawing unbounded sides.
	inverseMatrixForContext[c] = gg.Identity().
		Translate(minX, minY).
		Scale(1/scale, 1/scale).
		Translate(-dbgDrawPadding, -dbgDrawPadding).
		Scale(1, -1).
		Translate(0, -float64(height))
	defer delete(inverseMatrixForContext, c)

	c.SetLineWidth(3)
	trapezoids := t.Trapezoids()
	for _, trap := range trapezoids {
		drawTrapezoid(c, t, trap, false)
	}
	for _, trap := range trapezoids {
		drawTrapezoid(c, t, trap, true)
	}

	c.SavePNG("/tmp/trapezoids.png")
	imgcat.CatFile("/tmp/trapezoids.png", os.Stdout)
}

func drawTrapezoid(c *gg.Context, t *engine.Triangulator, trap *engine.Trapezoid, stroke bool) {
	points := t.Points()
	bounds := getCanvasBounds(c)

	topY, bottomY := float64(bounds.Max.Y), float64(bounds.Min.Y)
	if trap.UpperPoint != engine.NoPoint {
		topY = points[trap.UpperPoint].Y
	}
	if trap.LowerPoint != engine.NoPoint {
		bottomY = points[trap.LowerPoint].Y
	}

	sideX := func(seg engine.SegIndex, fallback float64) (topX, bottomX float64) {
		if seg == engine.NoSeg {
			return fallback, fallback
		}
		line := t.SegmentLine(seg)
		return line.SolveForX(topY), line.SolveForX(bottomY)
	}

	leftTopX, leftBottomX := sideX(trap.LeftSeg, float64(bounds.Min.X))
	rightTopX, rightBottomX := sideX(trap.RightSeg, float64(bounds.Max.X))

	c.MoveTo(leftTopX, topY)
	c.LineTo(leftBottomX, bottomY)
	c.LineTo(rightBottomX, bottomY)
	c.LineTo(rightTopX, topY)
	c.ClosePath()

	if stroke {
		c.SetRGB(0, 1, 0)
		c.Stroke()
		return
	}

	if trap.Inside {
		c.SetRGBA(0.3, 0.2, 1, 0.5)
	} else {
		c.SetRGBA(1, 1, 0, 0.5)
	}
	c.Fill()

	c.SetRGB(1, 1, 1)
	centerX := (leftTopX + leftBottomX + rightTopX + rightBottomX) / 4
	centerY := (topY + bottomY) / 2
	centerX, centerY = c.TransformPoint(centerX, centerY)
	c.Push()
	c.Identity()
	centerX, centerY = gg.Identity().Scale(.5, .5).TransformPoint(centerX, centerY)
	c.Scale(2, 2)
	c.DrawStringAnchored(Name(trap), centerX, centerY, 0.5, 0.5)
	c.Pop()
}

func getCanvasBounds(c *gg.Context) image.Rectangle {
	matrix := inverseMatrixForContext[c]
	bounds := image.Rect(-10, -10, c.Width()+20, c.Height()+20)
	minX, minY := matrix.TransformPoint(float64(bounds.Min.X), float64(bounds.Min.Y))
	maxX, maxY := matrix.TransformPoint(float64(bounds.Max.X), float64(bounds.Max.Y))
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Floor(maxX)), int(math.Floor(maxY)))
}
