package entity

import "math"

// Platform is a solid rectangle of the level.
// Ground marks floor tiles, which give no support inside a hole.
type Platform struct {
	Rect
	Ground bool
}

// Hole is a horizontal tile range [Start, Start+Length) without ground support
type Hole struct {
	Start  int
	Length int
}

// Contains reports whether tile index tx lies inside the hole
func (h Hole) Contains(tx int) bool {
	return tx >= h.Start && tx < h.Start+h.Length
}

// Coin is a pickup. Taken only ever goes from false to true.
type Coin struct {
	X, Y  float64
	R     float64
	Taken bool
}

// Level represents the static data of the current level
type Level struct {
	Number    int
	Name      string
	TileSize  int
	Width     int // in tiles
	FloorRow  int
	Platforms []Platform
	Holes     []Hole
	Coins     []Coin
	Goal      Rect
	FallLimit float64
}

// PixelWidth returns the level width in pixels
func (l *Level) PixelWidth() float64 {
	return float64(l.Width * l.TileSize)
}

// FloorY returns the y-coordinate of the top of the floor row
func (l *Level) FloorY() float64 {
	return float64(l.FloorRow * l.TileSize)
}

// TileAt returns the tile column containing pixel x
func (l *Level) TileAt(px float64) int {
	return int(math.Floor(px / float64(l.TileSize)))
}

// InHole reports whether pixel x lies inside any hole
func (l *Level) InHole(px float64) bool {
	return l.HoleAt(l.TileAt(px)) != nil
}

// HoleAt returns the hole covering tile tx, or nil
func (l *Level) HoleAt(tx int) *Hole {
	for i := range l.Holes {
		if l.Holes[i].Contains(tx) {
			return &l.Holes[i]
		}
	}
	return nil
}

// GroundSpan returns the pixel range [left, right) of the contiguous
// hole-free ground around pixel x
func (l *Level) GroundSpan(px float64) (left, right float64) {
	tx := l.TileAt(px)
	lo, hi := 0, l.Width
	for _, h := range l.Holes {
		if end := h.Start + h.Length; end <= tx && end > lo {
			lo = end
		}
		if h.Start > tx && h.Start < hi {
			hi = h.Start
		}
	}
	ts := float64(l.TileSize)
	return float64(lo) * ts, float64(hi) * ts
}
