// Package atlas reads TexturePacker sprite atlas metadata and resolves sprite
// keys to frame dimensions for the character preview.
//
// Both TexturePacker JSON layouts are accepted: "array" (frames is a list of
// objects with a filename field) and "hash" (frames is an object keyed by
// filename).
package atlas

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/vovakirdan/rosterpick/internal/core"
)

// ErrInvalidMetadata is returned for data that is not atlas JSON.
var ErrInvalidMetadata = errors.New("atlas: invalid metadata")

// Frame is one sprite rectangle inside an atlas image.
type Frame struct {
	Name       string
	X, Y, W, H int
}

// Size returns the frame dimensions.
func (f Frame) Size() core.Size {
	return core.Size{W: f.W, H: f.H}
}

// Atlas is the parsed metadata of one atlas image.
type Atlas struct {
	Frames []Frame
	Size   core.Size // meta.size; zero when absent
}

// Parse decodes atlas metadata.
func Parse(data []byte) (*Atlas, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidMetadata)
	}

	root := gjson.ParseBytes(data)
	a := &Atlas{
		Size: core.Size{
			W: int(root.Get("meta.size.w").Int()),
			H: int(root.Get("meta.size.h").Int()),
		},
	}

	frames := root.Get("frames")
	switch {
	case !frames.Exists():
		// No frames is a valid, empty atlas.
	case frames.IsArray():
		frames.ForEach(func(_, v gjson.Result) bool {
			a.Frames = append(a.Frames, parseFrame(v.Get("filename").String(), v))
			return true
		})
	case frames.IsObject():
		frames.ForEach(func(k, v gjson.Result) bool {
			a.Frames = append(a.Frames, parseFrame(k.String(), v))
			return true
		})
	default:
		return nil, fmt.Errorf("%w: frames must be an array or object", ErrInvalidMetadata)
	}

	for _, f := range a.Frames {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: frame without filename", ErrInvalidMetadata)
		}
	}
	return a, nil
}

func parseFrame(name string, v gjson.Result) Frame {
	return Frame{
		Name: name,
		X:    int(v.Get("frame.x").Int()),
		Y:    int(v.Get("frame.y").Int()),
		W:    int(v.Get("frame.w").Int()),
		H:    int(v.Get("frame.h").Int()),
	}
}

// Load reads and parses an atlas metadata file.
func Load(file string) (*Atlas, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("atlas: reading %s: %w", file, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: parsing %s: %w", file, err)
	}
	return a, nil
}

// Sheet merges frames from several atlases into one sprite lookup.
// Later atlases win on duplicate frame names.
type Sheet struct {
	frames map[string]Frame
}

// NewSheet builds a lookup over the given atlases.
func NewSheet(atlases ...*Atlas) *Sheet {
	s := &Sheet{frames: make(map[string]Frame)}
	for _, a := range atlases {
		if a == nil {
			continue
		}
		for _, f := range a.Frames {
			s.frames[f.Name] = f
		}
	}
	return s
}

// Frame looks up a frame by key. "matteo/idle" and "matteo/idle.png" both
// match a frame named either way.
func (s *Sheet) Frame(key string) (Frame, bool) {
	if f, ok := s.frames[key]; ok {
		return f, true
	}
	if path.Ext(key) == "" {
		f, ok := s.frames[key+".png"]
		return f, ok
	}
	if path.Ext(key) == ".png" {
		f, ok := s.frames[key[:len(key)-len(".png")]]
		return f, ok
	}
	return Frame{}, false
}

// Dimensions returns the pixel size of the frame behind key.
func (s *Sheet) Dimensions(key string) (core.Size, bool) {
	f, ok := s.Frame(key)
	if !ok {
		return core.Size{}, false
	}
	return f.Size(), true
}

// Len returns the number of distinct frames.
func (s *Sheet) Len() int {
	return len(s.frames)
}

// Names returns all frame names, sorted.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.frames))
	for name := range s.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSheet loads atlas metadata into a Sheet. With characters, pattern must
// contain {char} and one atlas is loaded per character; otherwise pattern is
// a single file.
func LoadSheet(pattern string, characters []string) (*Sheet, error) {
	if len(characters) == 0 {
		a, err := Load(pattern)
		if err != nil {
			return nil, err
		}
		return NewSheet(a), nil
	}

	atlases := make([]*Atlas, 0, len(characters))
	for _, char := range characters {
		file, err := ExpandCharacter(pattern, char, true)
		if err != nil {
			return nil, err
		}
		a, err := Load(file)
		if err != nil {
			return nil, err
		}
		atlases = append(atlases, a)
	}
	return NewSheet(atlases...), nil
}
