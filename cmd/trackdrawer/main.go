// Command trackdrawer builds track files from control points and inspects,
// validates and renders existing ones.
//
// Usage:
//
//	trackdrawer build [flags] <points file> <track name>
//	trackdrawer info <track file>
//	trackdrawer render [flags] <track file> <image file>
//	trackdrawer svg <track file> <svg file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/racesim/track"
	"github.com/racesim/track/internal/config"
	"github.com/racesim/track/internal/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("trackdrawer: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

var errUsage = errors.New("usage: trackdrawer build|info|render|svg [flags] args...")

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "build":
		return runBuild(args[1:])
	case "info":
		return runInfo(args[1:], stdout)
	case "render":
		return runRender(args[1:])
	case "svg":
		return runSVG(args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

// loadConfig returns the configuration at path, or the defaults if path is
// empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to JSON config file")
	width := fs.Float64("width", 0, "track width (overrides config)")
	perSegment := fs.Int("n", 0, "samples per segment (overrides config)")
	mode := fs.String("mode", "", "boundary mode, centerline or tangent (overrides config)")
	preview := fs.String("preview", "", "also render a preview image to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("usage: trackdrawer build [flags] <points file> <track name>")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	b := track.NewBuilder(cfg.GetWidth(), cfg.GetPointsPerSegment())
	b.Mode = cfg.GetBoundaryMode()
	if *width > 0 {
		b.Width = *width
	}
	if *perSegment > 0 {
		b.PointsPerSegment = *perSegment
	}
	if *mode != "" {
		if b.Mode, err = track.ParseBoundaryMode(*mode); err != nil {
			return err
		}
	}

	pts, err := readPointsFile(fs.Arg(0))
	if err != nil {
		return err
	}
	for _, pt := range pts {
		b.Push(pt)
	}
	if pending := b.Pending(); len(pending) > 0 {
		log.Printf("ignoring %d trailing control points, %d needed for another segment", len(pending), b.Needed())
	}
	t := b.Track()
	if t == nil {
		return fmt.Errorf("%s: need at least 4 control points, got %d", fs.Arg(0), len(pts))
	}

	out := cfg.ResolvePath(fs.Arg(1))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := track.SaveFile(out, t); err != nil {
		return err
	}
	log.Printf("saved %d segments (%d boundary points) to %s", len(t.Segments), len(t.Left), out)

	if *preview != "" {
		w, h := cfg.GetPreviewSize()
		opts := render.Options{
			Title:            filepath.Base(out),
			PointsPerSegment: b.PointsPerSegment,
			ControlPoints:    true,
			Width:            w,
			Height:           h,
		}
		if err := render.Save(*preview, t, opts); err != nil {
			return err
		}
		log.Printf("rendered preview to %s", *preview)
	}
	return nil
}

func runInfo(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: trackdrawer info <track file>")
	}
	t, err := track.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "width:            %g\n", t.Width)
	fmt.Fprintf(stdout, "segments:         %d\n", len(t.Segments))
	fmt.Fprintf(stdout, "left boundary:    %d points\n", len(t.Left))
	fmt.Fprintf(stdout, "right boundary:   %d points\n", len(t.Right))
	fmt.Fprintf(stdout, "length:           %g\n", t.Length())
	fmt.Fprintf(stdout, "walls:            %d\n", len(t.Walls()))
	fmt.Fprintf(stdout, "bounds:           %v\n", t.BoundingBox())
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}
	fmt.Fprintln(stdout, "valid")
	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to JSON config file")
	perSegment := fs.Int("n", 0, "samples per segment of the drawn centerline (overrides config)")
	controls := fs.Bool("controls", true, "draw control points")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("usage: trackdrawer render [flags] <track file> <image file>")
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	t, err := track.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	w, h := cfg.GetPreviewSize()
	opts := render.Options{
		Title:            filepath.Base(fs.Arg(0)),
		PointsPerSegment: cfg.GetPointsPerSegment(),
		ControlPoints:    *controls,
		Width:            w,
		Height:           h,
	}
	if *perSegment > 0 {
		opts.PointsPerSegment = *perSegment
	}
	return render.Save(fs.Arg(1), t, opts)
}

func runSVG(args []string) error {
	fs := flag.NewFlagSet("svg", flag.ContinueOnError)
	precision := fs.Int("precision", 3, "maximum number of decimals, 0 for exact")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("usage: trackdrawer svg <track file> <svg file>")
	}
	t, err := track.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	f, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := track.WriteSVG(f, t, track.SVGOptions{MaxPrecision: *precision, Margin: t.Width}); err != nil {
		return err
	}
	return f.Close()
}
