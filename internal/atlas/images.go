package atlas

import (
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// CharPlaceholder is substituted with a character name in batch paths.
const CharPlaceholder = "{char}"

// ExpandCharacter substitutes char into value. When batching, paths that
// must differ per character have to carry the placeholder.
func ExpandCharacter(value, char string, requirePlaceholder bool) (string, error) {
	if char == "" || value == "" {
		return value, nil
	}
	if !strings.Contains(value, CharPlaceholder) {
		if requirePlaceholder {
			return "", fmt.Errorf("atlas: %q must include %s when processing several characters", value, CharPlaceholder)
		}
		return value, nil
	}
	return strings.ReplaceAll(value, CharPlaceholder, char), nil
}

// SpritePath returns the PNG path for a frame under dir. Frame names without
// an extension get ".png".
func SpritePath(dir, frameName string) string {
	rel := filepath.FromSlash(frameName)
	if filepath.Ext(rel) == "" {
		rel += ".png"
	}
	return filepath.Join(dir, rel)
}

// Extract crops every frame of the atlas image into its own PNG under outDir.
// Returns the written paths in frame order.
func Extract(imagePath string, meta *Atlas, outDir string) ([]string, error) {
	src, err := readRGBA(imagePath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("atlas: cannot create directory %s: %w", outDir, err)
	}

	written := make([]string, 0, len(meta.Frames))
	for _, f := range meta.Frames {
		sprite := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
		draw.Draw(sprite, sprite.Bounds(), src, image.Pt(f.X, f.Y), draw.Src)

		out := SpritePath(outDir, f.Name)
		if err := writePNG(out, sprite); err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}

// ApplyResult lists what Apply did.
type ApplyResult struct {
	Applied []string // Sprite files pasted into the canvas
	Resized []string // Sprites whose size did not match their frame
}

// Apply rebuilds an atlas image from edited sprites. The canvas starts from
// basePath when given, otherwise a transparent image of the metadata size.
// Sprites that do not match their frame are resized with nearest-neighbour
// sampling. A missing sprite file fails the whole rebuild.
func Apply(meta *Atlas, spritesDir, outPath, basePath string) (ApplyResult, error) {
	var res ApplyResult

	var canvas *image.RGBA
	if basePath != "" {
		base, err := readRGBA(basePath)
		if err != nil {
			return res, err
		}
		canvas = base
	} else {
		if meta.Size.Empty() {
			return res, fmt.Errorf("%w: meta.size is required without a base image", ErrInvalidMetadata)
		}
		canvas = image.NewRGBA(image.Rect(0, 0, meta.Size.W, meta.Size.H))
	}

	for _, f := range meta.Frames {
		file := SpritePath(spritesDir, f.Name)
		if _, err := os.Stat(file); err != nil {
			return res, fmt.Errorf("atlas: missing sprite file %s: %w", file, fs.ErrNotExist)
		}

		sprite, err := readRGBA(file)
		if err != nil {
			return res, err
		}

		var src image.Image = sprite
		if b := sprite.Bounds(); b.Dx() != f.W || b.Dy() != f.H {
			scaled := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
			draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), sprite, b, draw.Src, nil)
			src = scaled
			res.Resized = append(res.Resized, file)
		}

		dst := image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
		draw.Draw(canvas, dst, src, src.Bounds().Min, draw.Src)
		res.Applied = append(res.Applied, file)
	}

	if err := writePNG(outPath, canvas); err != nil {
		return res, err
	}
	return res, nil
}

// readRGBA decodes a PNG into an RGBA image anchored at the origin.
func readRGBA(file string) (*image.RGBA, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("atlas: cannot open image %s: %w", file, err)
	}
	defer fh.Close()

	img, err := png.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("atlas: cannot decode image %s: %w", file, err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}

func writePNG(file string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("atlas: cannot create directory for %s: %w", file, err)
	}

	fh, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("atlas: cannot create %s: %w", file, err)
	}
	if err := png.Encode(fh, img); err != nil {
		fh.Close()
		return fmt.Errorf("atlas: cannot encode %s: %w", file, err)
	}
	return fh.Close()
}
