package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rosterpick/internal/atlas"
)

var (
	flagAtlasImage      string
	flagAtlasData       string
	flagAtlasOut        string
	flagAtlasSprites    string
	flagAtlasBase       string
	flagAtlasCharacters []string
)

var atlasCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Sprite atlas tools",
	Long: `Split an atlas image into per-frame sprites, and rebuild it after editing.

Paths may contain {char}. With --characters, every path that differs per
character must contain {char}, and the command runs once per character.`,
}

var atlasExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Crop every atlas frame into its own PNG",
	Long: `Crop every frame listed in the atlas metadata into <out>/<frame>.png.

Examples:
  rosterpick atlas extract --image atlas.png --data atlas.json --out sprites/
  rosterpick atlas extract --image '{char}.png' --data '{char}.json' --out 'sprites/{char}' --characters matteo,noa`,
	Run: runAtlasExtract,
}

var atlasApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Rebuild an atlas image from edited sprites",
	Long: `Paste every sprite back into an atlas image. The canvas is the --base image
when given, otherwise a transparent image of the metadata size. Sprites whose
size does not match their frame are resized and reported.

Examples:
  rosterpick atlas apply --data atlas.json --sprites sprites/ --out atlas.png
  rosterpick atlas apply --data atlas.json --sprites sprites/ --out new.png --base atlas.png`,
	Run: runAtlasApply,
}

func init() {
	atlasCmd.PersistentFlags().StringVar(&flagAtlasData, "data", "", "Atlas metadata JSON")
	atlasCmd.PersistentFlags().StringSliceVar(&flagAtlasCharacters, "characters", nil, "Characters to substitute for {char}")

	atlasExtractCmd.Flags().StringVar(&flagAtlasImage, "image", "", "Atlas PNG image")
	atlasExtractCmd.Flags().StringVar(&flagAtlasOut, "out", "sprites", "Output directory")

	atlasApplyCmd.Flags().StringVar(&flagAtlasSprites, "sprites", "sprites", "Directory of edited sprites")
	atlasApplyCmd.Flags().StringVar(&flagAtlasOut, "out", "", "Output atlas PNG")
	atlasApplyCmd.Flags().StringVar(&flagAtlasBase, "base", "", "Base image to paste onto (optional)")

	atlasCmd.AddCommand(atlasExtractCmd)
	atlasCmd.AddCommand(atlasApplyCmd)
}

// batch runs fn once per character, or once with no character.
func batch(fn func(char string, batched bool) error) error {
	if len(flagAtlasCharacters) == 0 {
		return fn("", false)
	}
	for _, char := range flagAtlasCharacters {
		if err := fn(char, true); err != nil {
			return fmt.Errorf("%s: %w", char, err)
		}
	}
	return nil
}

// expandAll substitutes char into each path, in place.
func expandAll(char string, batched bool, paths ...*string) error {
	for _, p := range paths {
		v, err := atlas.ExpandCharacter(*p, char, batched)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func runAtlasExtract(_ *cobra.Command, _ []string) {
	if flagAtlasImage == "" || flagAtlasData == "" {
		fmt.Fprintln(os.Stderr, "Error: --image and --data are required")
		os.Exit(1)
	}

	err := batch(func(char string, batched bool) error {
		image, data, out := flagAtlasImage, flagAtlasData, flagAtlasOut
		if err := expandAll(char, batched, &image, &data, &out); err != nil {
			return err
		}

		meta, err := atlas.Load(data)
		if err != nil {
			return err
		}
		written, err := atlas.Extract(image, meta, out)
		if err != nil {
			return err
		}
		fmt.Printf("Extracted %d sprites to %s\n", len(written), out)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAtlasApply(_ *cobra.Command, _ []string) {
	if flagAtlasData == "" || flagAtlasOut == "" {
		fmt.Fprintln(os.Stderr, "Error: --data and --out are required")
		os.Exit(1)
	}

	err := batch(func(char string, batched bool) error {
		data, sprites, out, base := flagAtlasData, flagAtlasSprites, flagAtlasOut, flagAtlasBase
		if err := expandAll(char, batched, &data, &sprites, &out); err != nil {
			return err
		}
		// A shared base image is allowed without {char}.
		if err := expandAll(char, false, &base); err != nil {
			return err
		}

		meta, err := atlas.Load(data)
		if err != nil {
			return err
		}
		res, err := atlas.Apply(meta, sprites, out, base)
		if err != nil {
			return err
		}
		for _, file := range res.Resized {
			fmt.Printf("  resized %s\n", file)
		}
		fmt.Printf("Applied %d sprites to %s\n", len(res.Applied), out)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
