// Command stickergen renders bubble stickers and manages palette overrides from the shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/youruser/bubblesticker/internal/app"
	"github.com/youruser/bubblesticker/internal/bubble"
	"github.com/youruser/bubblesticker/internal/catalog"
	"github.com/youruser/bubblesticker/internal/config"
	"github.com/youruser/bubblesticker/internal/emotion"
	imagepkg "github.com/youruser/bubblesticker/internal/image"
	"github.com/youruser/bubblesticker/internal/palette"
	"github.com/youruser/bubblesticker/internal/storage"
	"github.com/youruser/bubblesticker/internal/util"
)

var version = "dev"

const usage = `usage: stickergen <command> [flags]

commands:
  render          render text to a PNG sticker
  emotions        list emotions with their colors
  migrate         create the palette_colors table
  import-palette  store a JSON or CSV palette file in the database
  delete-palette  remove stored colors for the named emotions
  version         print the version
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "stickergen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("missing command")
	}
	cfg, err := config.Load(nil)
	if err != nil {
		return err
	}
	logger := cfg.Logger(stderr)

	switch args[0] {
	case "render":
		return cmdRender(ctx, cfg, logger, args[1:], stdout)
	case "emotions":
		return cmdEmotions(ctx, cfg, logger, args[1:], stdout)
	case "migrate":
		return withStore(ctx, cfg, func(s *storage.Store) error {
			if err := s.Migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "palette_colors ready")
			return nil
		})
	case "import-palette":
		return cmdImport(ctx, cfg, args[1:], stdout)
	case "delete-palette":
		return cmdDelete(ctx, cfg, args[1:], stdout)
	case "version":
		fmt.Fprintln(stdout, version)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdRender(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("out", "", "output file (default: a random name in -dir)")
	dir := fs.String("dir", ".", "output directory when -out is empty")
	emo := fs.String("emotion", "", "raw emotion labels, e.g. \"joy,love\" (default: classify the text)")
	width := fs.Int("width", cfg.StickerWidth, "sticker width")
	height := fs.Int("height", cfg.StickerHeight, "sticker height")
	scale := fs.Int("scale", cfg.RenderScale, "supersampling factor 1..4")
	card := fs.Bool("card", false, "add a QR code of the share link")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("render: text argument required")
	}
	msg := fs.Arg(0)
	if *width > config.MaxDimension || *height > config.MaxDimension {
		return fmt.Errorf("render: size exceeds %d", config.MaxDimension)
	}
	cfg.RenderScale = *scale

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	raw := *emo
	if raw == "" {
		raw = string(a.Detector.Detect(ctx, msg).Emotion)
	}
	st, err := a.Renderer.Render(msg, raw, bubble.Size{Width: *width, Height: *height})
	if err != nil {
		return err
	}
	img := st.Image
	var link string
	if *card {
		link = imagepkg.ShareURL(cfg.BaseURL(), msg, string(st.Emotion), *width, *height)
		qr, err := imagepkg.GenerateQRImage(link, imagepkg.ClampQRSize(st.Height))
		if err != nil {
			return err
		}
		img = imagepkg.ComposeShareCard(img, qr)
	}
	data, err := imagepkg.EncodePNG(img)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		if path, err = util.StickerPath(*dir); err != nil {
			return err
		}
	}
	if err := util.WriteFile(path, data); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\t%s\t%s\n", filepath.Clean(path), st.Emotion, st.Background.Hex())
	if link != "" {
		fmt.Fprintln(stdout, "share:", link)
	}
	return nil
}

func cmdEmotions(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("emotions", flag.ContinueOnError)
	category := fs.String("category", "", "only this category (positive, negative, ambiguous)")
	byPriority := fs.Bool("priority", false, "sort by resolution priority")
	format := fs.String("format", "table", "table, text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	store := app.OpenStore(ctx, cfg, logger)
	if store != nil {
		defer store.Close()
	}
	entries := catalog.Build(app.NewPalette(ctx, cfg, store, logger), emotion.DefaultPriority)
	if *category != "" {
		entries = catalog.Filter(entries, catalog.FilterOptions{Categories: []string{*category}})
	}
	if *byPriority {
		catalog.SortByPriority(entries)
	}
	switch *format {
	case "text":
		_, err := fmt.Fprintln(stdout, catalog.ExportText(entries))
		return err
	case "json":
		data, err := catalog.ExportJSON(entries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	case "table":
	default:
		return fmt.Errorf("emotions: unknown format %q", *format)
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMOTION\tCATEGORY\tPRIORITY\tCOLOR\tTEXT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", e.Emotion, e.Category, e.Priority, e.Color, e.Foreground)
	}
	return tw.Flush()
}

func cmdImport(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("import-palette: exactly one file argument required")
	}
	entries, err := palette.LoadOverrideFile(args[0])
	if err != nil {
		return err
	}
	return withStore(ctx, cfg, func(s *storage.Store) error {
		if err := s.Migrate(ctx); err != nil {
			return err
		}
		n, err := s.SaveOverrides(ctx, entries...)
		if err != nil {
			// valid rows are still saved
			fmt.Fprintf(stdout, "imported %d of %d entries\n", n, len(entries))
			return err
		}
		fmt.Fprintf(stdout, "imported %d entries\n", n)
		return nil
	})
}

func cmdDelete(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("delete-palette: at least one emotion required")
	}
	return withStore(ctx, cfg, func(s *storage.Store) error {
		for _, name := range args {
			if err := s.DeleteOverride(ctx, name); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "deleted", emotion.Normalize(name))
		}
		return nil
	})
}

func withStore(ctx context.Context, cfg *config.Config, fn func(*storage.Store) error) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	s, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
