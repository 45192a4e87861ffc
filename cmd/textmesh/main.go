// Command textmesh builds solid text the same way the multiple-animation page does and writes each string to its own
// binary glTF file, so the geometry can be checked in any glTF viewer.
//
//	textmesh -out meshes U . Stack
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/colors"
	"github.com/solarlune/scrollstage/config"
	"github.com/solarlune/scrollstage/gltfexport"
	"github.com/solarlune/scrollstage/typeface"
)

func main() {

	outDir := flag.String("out", ".", "directory the .glb files are written to")
	level := flag.String("log", "info", "log level: debug, info, warn, or error")
	flag.Parse()

	logger := config.LogConfig{Level: *level}.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: textmesh [-out dir] text...")
		os.Exit(2)
	}

	face, err := typeface.Default()
	if err != nil {
		logger.Error("loading typeface", "err", err)
		os.Exit(1)
	}

	builder := scrollstage.NewTextBuilder(face, scrollstage.NewStandardMaterial("Text", colors.Amber(), colors.Azure()))

	paths, err := Export(context.Background(), builder, *outDir, flag.Args())
	if err != nil {
		logger.Error("building text", "err", err)
		os.Exit(1)
	}

	for _, path := range paths {
		logger.Info("wrote", "path", path)
	}

}

// Export builds every text concurrently and writes each to its own file in dir, returning the paths in the order the texts
// were given. The first text that fails to build cancels the rest, and its error is returned.
func Export(ctx context.Context, builder *scrollstage.TextBuilder, dir string, texts []string) ([]string, error) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, len(texts))
	group, ctx := errgroup.WithContext(ctx)

	for i, text := range texts {

		group.Go(func() error {

			mesh, err := builder.Geometry(text)
			if err != nil {
				return fmt.Errorf("%q: %w", text, err)
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(dir, FileName(i, text))
			if err := gltfexport.WriteGLB(path, mesh); err != nil {
				return err
			}

			slog.Debug("built", "text", text, "triangles", mesh.TriangleCount())
			paths[i] = path
			return nil

		})

	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return paths, nil

}

// FileName names the file of the i-th text; characters that don't belong in file names are dropped.
func FileName(i int, text string) string {

	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return -1
	}, text)

	if slug == "" {
		slug = "text"
	}

	return fmt.Sprintf("%02d-%s.glb", i, slug)

}
