// Command yuvpreview inspects raw YUV dumps from the command line.
//
// Usage:
//
//	yuvpreview show [options] <input.yuv>     one frame → PNG/BMP/TIFF
//	yuvpreview info [options] <input.yuv>     frame count and plane layout
//	yuvpreview repack [options] <in> <out>    re-label frames with another format
//	yuvpreview formats                        list pixel formats and colorspaces
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pion/yuvio"
	"github.com/pion/yuvio/pkg/colorspace"
	"github.com/pion/yuvio/pkg/frame"
	"github.com/pion/yuvio/pkg/io/video"
	"github.com/pion/yuvio/pkg/prop"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "show":
		err = runShow(os.Args[2:], os.Stdout)
	case "info":
		err = runInfo(os.Args[2:], os.Stdout)
	case "repack":
		err = runRepack(os.Args[2:], os.Stdout)
	case "formats":
		err = runFormats(os.Stdout)
	case "-h", "-help", "--help", "help":
		printUsage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "yuvpreview: unknown command %q\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "yuvpreview: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  yuvpreview show [options] <input.yuv>     Convert one frame to PNG, BMP or TIFF
  yuvpreview info [options] <input.yuv>     Print frame count and plane layout
  yuvpreview repack [options] <in> <out>    Re-label frames with another format
  yuvpreview formats                        List pixel formats and colorspaces

Run "yuvpreview <command> -h" for command-specific options.
`)
}

// videoFlags registers the stream property flags shared by all commands.
func videoFlags(fs *flag.FlagSet) func() (prop.Video, error) {
	size := fs.String("s", "", "frame size WxH (required)")
	pixFmt := fs.String("pix_fmt", "", "pixel format (default yuv420p)")
	spec := fs.String("spec", "", "colorspace specification: bt601/bt709/bt2020/bt2100 (default bt709)")
	rng := fs.String("range", "", "value range: limited/full (default limited)")

	return func() (prop.Video, error) {
		var p prop.Video
		var err error
		if p.Width, p.Height, err = parseSize(*size); err != nil {
			return prop.Video{}, err
		}
		p.PixelFormat = *pixFmt
		p.Specification = colorspace.Specification(*spec)
		p.Range = colorspace.Range(*rng)
		return p.WithDefaults(), nil
	}
}

func parseSize(s string) (width, height int, err error) {
	if s == "" {
		return 0, 0, fmt.Errorf("missing frame size -s (e.g. -s 1920x1080)")
	}
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid frame size %q: expected WxH", s)
	}
	if width, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf("invalid frame width in %q: %w", s, err)
	}
	if height, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("invalid frame height in %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid frame size %q: dimensions must be positive", s)
	}
	return width, height, nil
}

// --- show ---

func runShow(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	props := videoFlags(fs)
	index := fs.Int("i", 0, "frame index")
	width := fs.Int("width", 0, "preview width (0 = keep, aspect ratio kept if height is 0)")
	height := fs.Int("height", 0, "preview height (0 = keep)")
	scaler := fs.String("scaler", "bilinear", "scaler: nearest/approx/bilinear/catmullrom")
	output := fs.String("o", "", "output path, .png/.bmp/.tif (default: <input>.<index>.png)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("show: missing input file\nUsage: yuvpreview show [options] <input.yuv>")
	}
	inputPath := fs.Arg(0)

	p, err := props()
	if err != nil {
		return err
	}
	s, err := parseScaler(*scaler)
	if err != nil {
		return err
	}

	fr, err := yuvio.ReadFrame(inputPath, p, *index)
	if err != nil {
		return err
	}
	rgb, err := yuvio.ToRGB(fr, p.Specification, p.Range)
	if err != nil {
		return err
	}
	if *width > 0 || *height > 0 {
		if rgb, err = rgb.Scale(*width, *height, s); err != nil {
			return err
		}
	}

	outPath := *output
	if outPath == "" {
		outPath = fmt.Sprintf("%s.%d.png", strings.TrimSuffix(inputPath, filepath.Ext(inputPath)), *index)
	}
	if err := writeImage(outPath, rgb.Image()); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s[%d] %s -> %s (%dx%d)\n", inputPath, *index, p, outPath, rgb.Width, rgb.Height)
	return nil
}

func parseScaler(name string) (colorspace.Scaler, error) {
	switch name {
	case "nearest":
		return colorspace.ScalerNearestNeighbor, nil
	case "approx":
		return colorspace.ScalerApproxBiLinear, nil
	case "bilinear":
		return colorspace.ScalerBiLinear, nil
	case "catmullrom":
		return colorspace.ScalerCatmullRom, nil
	}
	return nil, fmt.Errorf("unknown scaler %q", name)
}

func writeImage(path string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}
	default:
		return fmt.Errorf("unsupported output extension %q (use .png, .bmp or .tif)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}

// --- info ---

func runInfo(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	props := videoFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("info: missing input file\nUsage: yuvpreview info [options] <input.yuv>")
	}

	p, err := props()
	if err != nil {
		return err
	}
	r, err := yuvio.NewReader(fs.Arg(0), p)
	if err != nil {
		return err
	}
	defer r.Close()

	f := r.Format()
	fmt.Fprintf(stdout, "File:       %s\n", r.Name())
	fmt.Fprintf(stdout, "Format:     %s\n", f)
	fmt.Fprintf(stdout, "Frames:     %d\n", r.Len())
	fmt.Fprintf(stdout, "Frame size: %d bytes\n", f.Size())
	fmt.Fprintf(stdout, "Planes:     %s\n", f.IOInfo())
	return nil
}

// --- repack ---

func runRepack(args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("repack", flag.ContinueOnError)
	props := videoFlags(fs)
	to := fs.String("to", "", "target pixel format with the same plane shapes (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 || *to == "" {
		return fmt.Errorf("repack: missing arguments\nUsage: yuvpreview repack -s WxH -pix_fmt <from> -to <to> <in> <out>")
	}

	p, err := props()
	if err != nil {
		return err
	}
	target := p
	target.PixelFormat = *to

	r, err := yuvio.NewReader(fs.Arg(0), p)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := yuvio.NewWriter(fs.Arg(1), target)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	n, err := w.Copy(video.Rebind(w.Format())(r.Source(0)))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d frames %s -> %s\n", n, r.Format(), w.Format())
	return nil
}

// --- formats ---

func runFormats(stdout io.Writer) error {
	fmt.Fprintln(stdout, "Pixel formats:")
	for _, id := range frame.DefaultRegistry.IDs() {
		d, err := frame.Lookup(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  %-14s %-11s %2d bit\n", id, d.Layout, d.BitDepth)
	}
	fmt.Fprintln(stdout, "Colorspaces:")
	for _, k := range colorspace.DefaultTable.Keys() {
		fmt.Fprintf(stdout, "  %s\n", k)
	}
	return nil
}
