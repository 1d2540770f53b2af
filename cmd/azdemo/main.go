// Command azdemo renders a demonstration scene through azure draw targets
// and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/gogpu/gg"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/azure"
	"github.com/gogpu/azure/backend"
	_ "github.com/gogpu/azure/backend/native"
	"github.com/gogpu/azure/backend/recording"
	_ "github.com/gogpu/azure/backend/software"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		library = flag.String("library", "", "library to draw with (native, software); empty picks the best available")
		verbose = flag.Bool("v", false, "log handle lifecycle at debug level")
		trace   = flag.Bool("trace", false, "print a summary of library calls")
	)
	flag.Parse()

	if *verbose {
		azure.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	lib, err := pickLibrary(*library)
	if err != nil {
		log.Fatalf("No library: %v", err)
	}
	var rec *recording.Library
	if *trace {
		rec = recording.New(lib)
		lib = rec
	}
	azure.UseLibrary(lib)

	size := azure.IntSize{Width: int32(*width), Height: int32(*height)}
	dt, err := azure.CreateDrawTarget(azure.SkiaBackend, size, azure.FormatB8G8R8A8)
	if err != nil {
		log.Fatalf("Failed to create draw target: %v", err)
	}

	drawGradientBackground(dt, size)
	drawShapesDemo(dt)
	drawTransformDemo(dt)
	drawPathDemo(dt)
	drawTextDemo(dt)
	dt.Flush()

	if err := savePNG(dt, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	dt.Release()

	log.Printf("Demo saved to %s (%dx%d, %s)\n", *output, *width, *height, lib.Name())
	if rec != nil {
		printTrace(rec)
	}
}

func pickLibrary(name string) (backend.Library, error) {
	if name != "" {
		return backend.Lookup(name)
	}
	return azure.CurrentLibrary()
}

func savePNG(dt *azure.DrawTarget, path string) error {
	snap := dt.Snapshot()
	defer snap.Release()
	data := snap.DataSurface()
	defer data.Release()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, data.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printTrace(rec *recording.Library) {
	counts := make(map[recording.CommandType]int)
	for _, c := range rec.Commands() {
		counts[c.Type]++
	}
	for t := recording.CmdCreateColorPattern; t <= recording.CmdReleaseSharedSurface; t++ {
		if n := counts[t]; n > 0 {
			fmt.Printf("%-32s %d\n", t, n)
		}
	}
}

func withColor(c azure.Color, f func(p *azure.ColorPattern)) {
	p := azure.NewColorPattern(c)
	defer p.Release()
	f(p)
}

func drawGradientBackground(dt *azure.DrawTarget, size azure.IntSize) {
	// Gradient background (simulated with rectangles)
	steps := 100
	w, h := float32(size.Width), float32(size.Height)
	for i := range steps {
		t := float32(i) / float32(steps)
		withColor(azure.RGBA(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2, 1), func(p *azure.ColorPattern) {
			dt.FillRect(azure.Rect{Y: h * t, Width: w, Height: h/float32(steps) + 1}, p, nil)
		})
	}
}

func circle(dt *azure.DrawTarget, cx, cy, r float32) *azure.Path {
	// Four cubic arcs
	const k = 0.5522848
	pb := dt.CreatePathBuilder()
	defer pb.Release()
	pb.MoveTo(azure.Pt(cx+r, cy))
	pb.BezierTo(azure.Pt(cx+r, cy+k*r), azure.Pt(cx+k*r, cy+r), azure.Pt(cx, cy+r))
	pb.BezierTo(azure.Pt(cx-k*r, cy+r), azure.Pt(cx-r, cy+k*r), azure.Pt(cx-r, cy))
	pb.BezierTo(azure.Pt(cx-r, cy-k*r), azure.Pt(cx-k*r, cy-r), azure.Pt(cx, cy-r))
	pb.BezierTo(azure.Pt(cx+k*r, cy-r), azure.Pt(cx+r, cy-k*r), azure.Pt(cx+r, cy))
	pb.Close()
	path, err := pb.Finish()
	if err != nil {
		log.Fatalf("circle: %v", err)
	}
	return path
}

func drawShapesDemo(dt *azure.DrawTarget) {
	// Circles, blended with Multiply where they overlap
	opts := azure.DefaultDrawOptions()
	for i, c := range []azure.Color{
		azure.RGBA(1, 0.3, 0.3, 0.8),
		azure.RGBA(0.3, 1, 0.3, 0.8),
		azure.RGBA(0.3, 0.3, 1, 0.8),
	} {
		centers := [][2]float32{{150, 150}, {200, 150}, {175, 200}}
		path := circle(dt, centers[i][0], centers[i][1], 60)
		withColor(c, func(p *azure.ColorPattern) { dt.Fill(path, p, opts) })
		path.Release()
		opts.SetCompositionOp(azure.MultiplyOp)
	}

	// Rectangles
	withColor(azure.RGBA(1, 0.8, 0, 1), func(p *azure.ColorPattern) {
		dt.FillRect(azure.Rect{X: 350, Y: 100, Width: 120, Height: 80}, p, nil)
	})

	// Stroked shapes
	stroke := azure.DefaultStrokeOptions()
	stroke.LineWidth = 4
	stroke.SetJoinStyle(azure.JoinRound)
	withColor(azure.White, func(p *azure.ColorPattern) {
		dt.StrokeRect(azure.Rect{X: 350, Y: 100, Width: 120, Height: 80}, p, stroke, azure.DefaultDrawOptions())
	})
}

func drawTransformDemo(dt *azure.DrawTarget) {
	// Rotated squares
	center := azure.Translation(600, 150)
	for i := range 8 {
		angle := float32(i) * math32.Pi / 4
		dt.SetTransform(azure.Rotation(angle).Then(center))

		// Color based on rotation
		c := azure.ColorFromStd(gg.HSL(float64(i)*45, 0.8, 0.6).Color())
		withColor(c, func(p *azure.ColorPattern) {
			dt.FillRect(azure.Rect{X: -30, Y: -30, Width: 60, Height: 60}, p, nil)
		})
	}
	dt.SetTransform(azure.Identity())
}

func drawPathDemo(dt *azure.DrawTarget) {
	// Complex path with curves
	dt.SetTransform(azure.Translation(150, 400))

	pb := dt.CreatePathBuilder()
	pb.MoveTo(azure.Pt(0, 0))
	pb.BezierTo(azure.Pt(50, -50), azure.Pt(100, 50), azure.Pt(150, 0))
	pb.QuadraticBezierTo(azure.Pt(225, -40), azure.Pt(300, 0))
	wave, err := pb.Finish()
	pb.Release()
	if err != nil {
		log.Fatalf("wave: %v", err)
	}
	stroke := azure.NewStrokeOptions(6, azure.JoinRound, azure.CapRound, 10, []float32{18, 8})
	withColor(azure.RGBA(1, 0.5, 0, 1), func(p *azure.ColorPattern) {
		dt.Stroke(wave, p, stroke, azure.DefaultDrawOptions())
	})
	wave.Release()

	// Polygon star, also used as a clip
	dt.SetTransform(azure.Translation(550, 400))
	points := 5
	var outerR, innerR float32 = 60, 30

	pb = dt.CreatePathBuilder()
	for i := range points * 2 {
		angle := float32(i) * math32.Pi / float32(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		s, c := math32.Sincos(angle - math32.Pi/2)
		if i == 0 {
			pb.MoveTo(azure.Pt(r*c, r*s))
		} else {
			pb.LineTo(azure.Pt(r*c, r*s))
		}
	}
	pb.Close()
	star, err := pb.Finish()
	pb.Release()
	if err != nil {
		log.Fatalf("star: %v", err)
	}

	dt.PushClip(star)
	withColor(azure.RGBA(1, 1, 0, 1), func(p *azure.ColorPattern) {
		dt.FillRect(azure.Rect{X: -60, Y: -60, Width: 120, Height: 60}, p, nil)
	})
	withColor(azure.RGBA(1, 0.6, 0, 1), func(p *azure.ColorPattern) {
		dt.FillRect(azure.Rect{X: -60, Y: 0, Width: 120, Height: 60}, p, nil)
	})
	dt.PopClip()
	star.Release()
	dt.SetTransform(azure.Identity())
}

func drawTextDemo(dt *azure.DrawTarget) {
	font, err := azure.CreateScaledFont(azure.SkiaBackend, goregular.TTF, 0, 32)
	if err != nil {
		log.Printf("Skipping text: %v", err)
		return
	}
	defer font.Release()

	const text = "azure draw targets"
	x := (float32(dt.Size().Width) - font.Advance(text)) / 2
	withColor(azure.White, func(p *azure.ColorPattern) {
		dt.FillGlyphs(font, font.GlyphsForString(text, azure.Pt(x, 540)), p, azure.DefaultDrawOptions())
	})
}
