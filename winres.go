package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/SethCurry/winres/internal/exif"
	"github.com/SethCurry/winres/internal/preview"
	"github.com/SethCurry/winres/internal/testcard"
	"github.com/SethCurry/winres/internal/winres"
	"github.com/SethCurry/winres/pkg/resolution"
)

const softwareName = "winres"

type ListCommand struct {
	Family string `optional:"" enum:"all,16:9,4:3" default:"all" help:"Only list one aspect ratio family: all, 16:9 or 4:3."`
}

func (l ListCommand) Run(ctx *Context) error {
	var entries []resolution.CommonResolution

	switch l.Family {
	case "16:9":
		entries = resolution.Common16x9()
	case "4:3":
		entries = resolution.Common4x3()
	default:
		entries = resolution.Common()
	}

	writeCatalog(ctx.Out, entries)

	return nil
}

func writeCatalog(w io.Writer, entries []resolution.CommonResolution) {
	fmt.Fprintf(w, "%-10s %-6s %-12s %s\n", "NAME", "RATIO", "PIXELS", "EXACTNESS")

	for _, e := range entries {
		r := e.Resolution
		fmt.Fprintf(w, "%-10s %-6s %-12s %s\n", e.Name, r.AspectRatio(), r.Pixels(), r.Exactness())
	}
}

type ShowCommand struct {
	Resolution string `arg:"" optional:"" help:"The resolution to show, e.g. 720p, 480p@4:3, 1280x720 or 16:9@480. Defaults to the configured resolution."`
}

func (s ShowCommand) Run(ctx *Context) error {
	r, err := ctx.resolve(s.Resolution)
	if err != nil {
		return err
	}

	writeResolution(ctx.Out, r)

	return nil
}

func writeResolution(w io.Writer, r resolution.Resolution) {
	ratio := r.AspectRatio()

	fmt.Fprintf(w, "pixels:       %s\n", r.Pixels())
	fmt.Fprintf(w, "size:         %s\n", r.Size())
	fmt.Fprintf(w, "aspect ratio: %s (%s)\n", ratio, strconv.FormatFloat(ratio.Ratio(), 'f', 3, 64))
	fmt.Fprintf(w, "exactness:    %s\n", r.Exactness())
}

type ScaleCommand struct {
	From string `arg:"" help:"The resolution to scale from."`
	To   string `arg:"" help:"The resolution to scale to."`
}

func (s ScaleCommand) Run(ctx *Context) error {
	from, err := resolution.Parse(s.From)
	if err != nil {
		return err
	}

	to, err := resolution.Parse(s.To)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "scale factor:  %s\n", from.ScaleFactor(to))
	fmt.Fprintf(ctx.Out, "integer scale: %t\n", from.HasIntegerScale(to))

	return nil
}

type TestcardCommand struct {
	Resolution   string `arg:"" optional:"" help:"The resolution to render. Defaults to the configured resolution."`
	OutputFormat string `optional:"" name:"format" enum:"png,jpeg" default:"png" help:"The format of the test card.  Must be either png or jpeg."`
}

func (c TestcardCommand) Run(ctx *Context) error {
	r, err := ctx.resolve(c.Resolution)
	if err != nil {
		return err
	}

	img, err := testcard.Render(r)
	if err != nil {
		return err
	}

	format, err := testcard.Format(c.OutputFormat)
	if err != nil {
		return err
	}

	var encoded bytes.Buffer

	if err := testcard.Encode(&encoded, img, format); err != nil {
		return err
	}

	exifAdder, err := exif.WriterFor(c.OutputFormat)
	if err != nil {
		return fmt.Errorf("failed to find Exif adder: %w", err)
	}

	stamped, err := exifAdder(encoded.Bytes(), exif.Describe(r, softwareName))
	if err != nil {
		return fmt.Errorf("failed to add exif metadata: %w", err)
	}

	px := r.Pixels()
	currentTime := strconv.FormatInt(time.Now().Unix(), 10)

	outputFile := filepath.Join(ctx.Config.OutputDirectory, fmt.Sprintf("%dx%d-%s.%s", px.Width, px.Height, currentTime, c.OutputFormat))
	if _, err := os.Stat(outputFile); err == nil {
		return fmt.Errorf("output file %q already exists", outputFile)
	}

	err = os.WriteFile(outputFile, stamped, 0o644)
	if err != nil {
		return fmt.Errorf("failed while writing to output file %q: %w", outputFile, err)
	}

	ctx.Logger.Info("wrote test card",
		zap.String("path", outputFile),
		zap.Stringer("pixels", px),
		zap.Stringer("exactness", r.Exactness()))

	if ctx.Config.PostRenderCommand != "" {
		cmd := exec.Command(ctx.Config.PostRenderCommand, outputFile)
		err = cmd.Run()
		if err != nil {
			ctx.Logger.Error(
				"post-render command failed",
				zap.String("command", fmt.Sprintf("%s %q", ctx.Config.PostRenderCommand, outputFile)),
				zap.Error(err))
		}
	}

	return nil
}

type PreviewCommand struct {
	Resolution string `arg:"" optional:"" help:"The resolution to preview. Defaults to the configured resolution."`
	Title      string `optional:"" help:"The window title. Defaults to the configured title."`
}

func (p PreviewCommand) Run(ctx *Context) error {
	r, err := ctx.resolve(p.Resolution)
	if err != nil {
		return err
	}

	title := p.Title
	if title == "" {
		title = ctx.Config.WindowTitle
	}

	return preview.Run(r, title, ctx.Logger)
}

type CLI struct {
	Config string `optional:"" type:"path" help:"Path to the configuration file.  Defaults to ~/.config/winres/config.json"`

	List     ListCommand     `cmd:"" help:"List the catalog of common resolutions."`
	Show     ShowCommand     `cmd:"" help:"Show the exact and pixel sizes of a resolution."`
	Scale    ScaleCommand    `cmd:"" help:"Show how one resolution scales to another."`
	Testcard TestcardCommand `cmd:"" help:"Render a test card image at a resolution."`
	Preview  PreviewCommand  `cmd:"" help:"Open a window sized to a resolution."`
}

type Context struct {
	Logger *zap.Logger
	Config winres.Config
	Out    io.Writer
}

// resolve parses arg, falling back to the configured default resolution.
func (c *Context) resolve(arg string) (resolution.Resolution, error) {
	if arg == "" {
		return c.Config.Resolution()
	}

	return resolution.Parse(arg)
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Errorf("failed to create logger: %w", err))
	}

	defer logger.Sync() //nolint:errcheck

	cli := &CLI{}

	ctx := kong.Parse(cli,
		kong.Name("winres"),
		kong.Description("Convert aspect ratios and resolutions into window sizes."),
		kong.UsageOnError())

	configPath := cli.Config
	if configPath == "" {
		configPath, err = winres.DefaultConfigPath()
		if err != nil {
			logger.Fatal("failed to get config path", zap.Error(err))
		}
	}

	config, err := winres.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", configPath), zap.Error(err))
	}

	err = ctx.Run(&Context{
		Logger: logger,
		Config: *config,
		Out:    os.Stdout,
	})
	if err != nil {
		logger.Fatal("failed to execute command", zap.Error(err))
	}
}
