package mire

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
)

// FrameData is the pixel rectangle of one animation frame inside a packed
// sprite sheet, in atlas order. Width doubles as the per-frame advance used
// to derive the atlas column divisor.
type FrameData struct {
	X, Y          float32
	Width, Height float32
}

// --- JSON structure types (TexturePacker hash format) ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

// LoadSpriteSheet parses TexturePacker JSON (hash format, a single "frames"
// object) into the flat frame table the animation state machine indexes.
// Frames are ordered by name with numeric suffixes compared as numbers, so
// "walk_2" sorts before "walk_10".
func LoadSpriteSheet(jsonData []byte) ([]FrameData, error) {
	var sheet struct {
		Frames map[string]jsonFrame `json:"frames"`
	}
	if err := json.Unmarshal(jsonData, &sheet); err != nil {
		return nil, fmt.Errorf("mire: failed to parse sprite sheet JSON: %w", err)
	}
	if sheet.Frames == nil {
		return nil, fmt.Errorf("mire: sprite sheet JSON has no \"frames\" key")
	}
	if len(sheet.Frames) == 0 && globalDebug {
		log.Printf("mire: sprite sheet \"frames\" object is empty")
	}

	names := make([]string, 0, len(sheet.Frames))
	for name := range sheet.Frames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return frameNameLess(names[i], names[j])
	})

	frames := make([]FrameData, 0, len(names))
	for _, name := range names {
		f := sheet.Frames[name].Frame
		frames = append(frames, FrameData{
			X:     float32(f.X),
			Y:     float32(f.Y),
			Width: float32(f.W), Height: float32(f.H),
		})
	}
	return frames, nil
}

// frameNameLess compares frame names treating digit runs as numbers.
func frameNameLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			na, ra := leadingInt(a)
			nb, rb := leadingInt(b)
			if na != nb {
				return na < nb
			}
			a, b = ra, rb
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func leadingInt(s string) (n int, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:]
}
