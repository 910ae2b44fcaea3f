package model

import "sort"

// Language selects a letter distribution and the dictionary used for
// word validation
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"

	// LanguageTest is a reduced 24-tile English distribution used to
	// reach endgame conditions quickly in tests
	LanguageTest Language = "test"
)

// LetterInfo holds the tile count and point value for one letter
type LetterInfo struct {
	Count  int
	Points int
}

// LetterDistribution defines the tile set for a language: how many of
// each letter the bag starts with and what each is worth.
// Blanks are always worth zero points.
type LetterDistribution struct {
	Language   Language
	Letters    map[rune]LetterInfo
	BlankCount int
}

// englishLetters is the standard 100-tile English distribution
// (98 letters plus 2 blanks)
var englishLetters = map[rune]LetterInfo{
	'A': {9, 1}, 'B': {2, 3}, 'C': {2, 3}, 'D': {4, 2}, 'E': {12, 1},
	'F': {2, 4}, 'G': {3, 2}, 'H': {2, 4}, 'I': {9, 1}, 'J': {1, 8},
	'K': {1, 5}, 'L': {4, 1}, 'M': {2, 3}, 'N': {6, 1}, 'O': {8, 1},
	'P': {2, 3}, 'Q': {1, 10}, 'R': {6, 1}, 'S': {4, 1}, 'T': {6, 1},
	'U': {4, 1}, 'V': {2, 4}, 'W': {2, 4}, 'X': {1, 8}, 'Y': {2, 4},
	'Z': {1, 10},
}

// germanLetters is the standard 102-tile German distribution
// (100 letters plus 2 blanks)
var germanLetters = map[rune]LetterInfo{
	'A': {5, 1}, 'B': {2, 3}, 'C': {2, 4}, 'D': {4, 1}, 'E': {15, 1},
	'F': {2, 4}, 'G': {3, 2}, 'H': {4, 2}, 'I': {6, 1}, 'J': {1, 6},
	'K': {2, 4}, 'L': {3, 2}, 'M': {4, 3}, 'N': {9, 1}, 'O': {3, 2},
	'P': {1, 4}, 'Q': {1, 10}, 'R': {6, 1}, 'S': {7, 1}, 'T': {6, 1},
	'U': {6, 1}, 'V': {1, 6}, 'W': {1, 3}, 'X': {1, 8}, 'Y': {1, 10},
	'Z': {1, 3}, 'Ä': {1, 6}, 'Ö': {1, 8}, 'Ü': {1, 6},
}

// testLetters is a 24-tile distribution (22 letters plus 2 blanks)
// with English point values, for accelerated endgame testing
var testLetters = map[rune]LetterInfo{
	'A': {3, 1}, 'E': {3, 1}, 'I': {2, 1}, 'O': {2, 1}, 'N': {2, 1},
	'R': {2, 1}, 'T': {2, 1}, 'L': {1, 1}, 'S': {1, 1}, 'U': {1, 1},
	'D': {1, 2}, 'G': {1, 2}, 'B': {1, 3},
}

var distributions = map[Language]*LetterDistribution{
	LanguageEnglish: {Language: LanguageEnglish, Letters: englishLetters, BlankCount: 2},
	LanguageGerman:  {Language: LanguageGerman, Letters: germanLetters, BlankCount: 2},
	LanguageTest:    {Language: LanguageTest, Letters: testLetters, BlankCount: 2},
}

// DistributionFor returns the letter distribution for a language
func DistributionFor(lang Language) (*LetterDistribution, error) {
	dist, ok := distributions[lang]
	if !ok {
		return nil, ErrUnknownLanguage
	}
	return dist, nil
}

// TotalTiles returns the size of a full bag for this distribution
func (d *LetterDistribution) TotalTiles() int {
	total := d.BlankCount
	for _, info := range d.Letters {
		total += info.Count
	}
	return total
}

// Points returns the point value of a letter, or 0 for unknown
// letters and blanks
func (d *LetterDistribution) Points(letter rune) int {
	return d.Letters[letter].Points
}

// Tiles expands the distribution into the full unshuffled tile list,
// in a stable letter order so shuffles are reproducible under a
// deterministic random source
func (d *LetterDistribution) Tiles() []Tile {
	letters := make([]rune, 0, len(d.Letters))
	for letter := range d.Letters {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	tiles := make([]Tile, 0, d.TotalTiles())
	for _, letter := range letters {
		info := d.Letters[letter]
		for i := 0; i < info.Count; i++ {
			tiles = append(tiles, NewTile(letter, info.Points))
		}
	}
	for i := 0; i < d.BlankCount; i++ {
		tiles = append(tiles, NewBlankTile())
	}
	return tiles
}
