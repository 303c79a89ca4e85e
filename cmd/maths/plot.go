package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/alex-fu27/maths/pkg/plot"
	"github.com/alex-fu27/maths/pkg/scalar"
	"github.com/alex-fu27/maths/pkg/vec"
)

// curve maps the unit interval onto a displayable response; outputs may
// leave [0, 1] (splines overshoot) and are clipped by the canvas.
type curve func(t float64) float64

var curves = map[string]curve{
	"smoothstep": scalar.SmoothStep[float64],
	"linearstep": func(t float64) float64 { return scalar.LinearStep(0.2, 0.8, t) },
	"ramp": func(t float64) float64 {
		// Ramp maps [-1,1] onto [-1,1]; rescale both axes for display.
		return (scalar.Ramp(2*t-1) + 1) / 2
	},
	"smoothstart2": func(t float64) float64 { return scalar.SmoothStart2(t, 0, 1, 1) },
	"smoothstart3": func(t float64) float64 { return scalar.SmoothStart3(t, 0, 1, 1) },
	"smoothstart4": func(t float64) float64 { return scalar.SmoothStart4(t, 0, 1, 1) },
	"smoothstart5": func(t float64) float64 { return scalar.SmoothStart5(t, 0, 1, 1) },
	"smoothstop2":  func(t float64) float64 { return scalar.SmoothStop2(t, 0, 1, 1) },
	"smoothstop3":  func(t float64) float64 { return scalar.SmoothStop3(t, 0, 1, 1) },
	"smoothstop4":  func(t float64) float64 { return scalar.SmoothStop4(t, 0, 1, 1) },
	"smoothstop5":  func(t float64) float64 { return scalar.SmoothStop5(t, 0, 1, 1) },
	"impulse":      func(t float64) float64 { return scalar.Impulse(4.0, t) },
	"cubicpulse":   func(t float64) float64 { return scalar.CubicPulse(0.5, 0.4, t) },
	"expstep":      func(t float64) float64 { return scalar.ExpStep(t, 8.0, 2.0) },
	"parabola":     func(t float64) float64 { return scalar.Parabola(t, 1.0) },
	"pcurve":       func(t float64) float64 { return scalar.PCurve(t, 3.0, 1.0) },
	"catmullrom": func(t float64) float64 {
		return scalar.CatmullRom(t, 0.0, 0.1, 0.9, 1.0)
	},
	"centripetal": func(t float64) float64 {
		return scalar.CatmullRomAlpha(t, 0.0, 0.1, 0.9, 1.0, 0.5)
	},
	"cubicinterp": func(t float64) float64 {
		return scalar.CubicInterp(0.0, 0.2, 0.8, 1.0, t)
	},
}

func curveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newPlotCmd() *cobra.Command {
	var targetFPS int

	cmd := &cobra.Command{
		Use:   "plot <curve>",
		Short: "Render a curve in the terminal",
		Long: "Render a named easing or spline curve in the terminal.\n\nCurves: " +
			strings.Join(curveNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := curves[args[0]]
			if !ok {
				return fmt.Errorf("unknown curve %q (try one of: %s)",
					args[0], strings.Join(curveNames(), ", "))
			}
			return runPlot(args[0], fn, targetFPS)
		},
	}

	cmd.Flags().IntVar(&targetFPS, "fps", 60, "Target FPS")

	return cmd
}

// toCanvas converts curve space ((0,0) bottom-left, unit square with a
// margin) into canvas pixels ((0,0) top-left).
func toCanvas(p vec.Vec2[float64], width, height int) vec.Vec2[float64] {
	const margin = 0.05
	w := float64(width - 1)
	h := float64(height - 1)
	x := scalar.MapToRange(0, 1, margin*w, (1-margin)*w, p.X())
	y := scalar.MapToRange(0, 1, (1-margin)*h, margin*h, p.Y())
	return vec.V2(x, y)
}

func runPlot(name string, fn curve, targetFPS int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	canvas := plot.New(width, height*2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				canvas = plot.New(width, height*2)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
					return
				}
			}
		}
	}()

	// A spring chases the marker target so the analytic ease can be compared
	// against spring motion; critically damped to avoid overshoot.
	spring := harmonica.NewSpring(harmonica.FPS(targetFPS), 1.5, 1.0)
	var springPos, springVel float64
	markerT := 0.0

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(targetFPS)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		// Marker sweeps the unit interval and wraps.
		markerT += dt / 3
		if markerT > 1 {
			markerT = 0
			springPos, springVel = 0, 0
		}
		springPos, springVel = spring.Update(springPos, springVel, markerT)

		canvas.Clear(plot.RGB(20, 20, 28))

		// Unit square frame
		frame := []vec.Vec2[float64]{
			{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
		}
		for i := range frame {
			frame[i] = toCanvas(frame[i], canvas.Width, canvas.Height)
		}
		canvas.Polyline(frame, plot.RGB(70, 70, 80))

		// The curve itself
		samples := make([]vec.Vec2[float64], 0, canvas.Width)
		for i := 0; i < canvas.Width; i++ {
			t := float64(i) / float64(canvas.Width-1)
			samples = append(samples, toCanvas(vec.V2(t, fn(t)), canvas.Width, canvas.Height))
		}
		canvas.Polyline(samples, plot.RGB(0, 255, 128))

		// Analytic marker on the curve, spring-driven marker below the frame.
		drawMarker(canvas, toCanvas(vec.V2(markerT, fn(markerT)), canvas.Width, canvas.Height),
			plot.RGB(255, 220, 0))
		drawMarker(canvas, toCanvas(vec.V2(springPos, -0.03), canvas.Width, canvas.Height),
			plot.RGB(90, 160, 255))

		canvas.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// drawMarker draws a small cross at p.
func drawMarker(c *plot.Canvas, p vec.Vec2[float64], col color.RGBA) {
	x, y := int(p.X()), int(p.Y())
	for d := -1; d <= 1; d++ {
		c.Set(x+d, y, col)
		c.Set(x, y+d, col)
	}
}
