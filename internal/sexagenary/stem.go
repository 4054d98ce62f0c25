// Package sexagenary implements the ten-stem/twelve-branch primitives
// shared by every layer of the BaZi engine: the Stem and Branch tokens,
// their polarity and element attributes, and the Pillar pair they form
// under the sexagenary-cycle parity constraint.
package sexagenary

// Polarity is yang or yin, derived from a Stem or Branch index's parity.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "yang"
	}
	return "yin"
}

// Element is one of the five traditional elements.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

func (e Element) String() string {
	return elementNames[e]
}

var elementNames = [5]string{"wood", "fire", "earth", "metal", "water"}

// generates reports whether element a produces element b in the
// generation cycle wood->fire->earth->metal->water->wood.
func (a Element) generates(b Element) bool {
	return (a+1)%5 == b
}

// overcomes reports whether element a overcomes element b in the
// overcoming cycle wood->earth->water->fire->metal->wood.
func (a Element) overcomes(b Element) bool {
	return (a+2)%5 == b
}

// Generates is the exported form of generates, for use by layers above
// sexagenary (ten-gods, five-element scoring).
func (a Element) Generates(b Element) bool { return a.generates(b) }

// Overcomes is the exported form of overcomes, for use by layers above
// sexagenary (ten-gods, five-element scoring).
func (a Element) Overcomes(b Element) bool { return a.overcomes(b) }

// Stem is one of the ten heavenly stems 甲乙丙丁戊己庚辛壬癸, indexed 0..9.
type Stem struct {
	index int
}

// NewStem builds a Stem from any integer index, reducing it into [0, 10).
func NewStem(index int) Stem {
	return Stem{index: ((index % 10) + 10) % 10}
}

// Index returns the stem's position in [0, 10).
func (s Stem) Index() int { return s.index }

// Polarity is Yang for even indices, Yin for odd.
func (s Stem) Polarity() Polarity {
	if s.index%2 == 0 {
		return Yang
	}
	return Yin
}

// Element groups stems in adjacent pairs: 0-1 wood, 2-3 fire, 4-5 earth,
// 6-7 metal, 8-9 water.
func (s Stem) Element() Element {
	return Element(s.index / 2)
}

// Name returns the stem's Han character.
func (s Stem) Name() string { return stemNames[s.index] }

func (s Stem) String() string { return s.Name() }

var stemNames = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Stems is the full ordered set, index 0..9.
var Stems = [10]Stem{
	{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9},
}
