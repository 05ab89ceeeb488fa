// Package natsort orders filenames the way a human expects:
// embedded digit runs compare as numbers, so file2 < file10 < file100.
package natsort

import (
	"strconv"
	"strings"
)

// Chunk is one segment of a sort key, either a numeric run or
// case-folded text.
type Chunk struct {
	Text   string
	Number uint64
	IsNum  bool
}

// Key splits s at maximal runs of decimal digits.
func Key(s string) []Chunk {
	var chunks []Chunk
	i := 0
	for i < len(s) {
		j := i
		digit := isDigit(s[i])
		for j < len(s) && isDigit(s[j]) == digit {
			j++
		}
		seg := s[i:j]
		if digit {
			n, err := strconv.ParseUint(seg, 10, 64)
			if err != nil {
				// Run longer than 20 digits, compare as text.
				chunks = append(chunks, Chunk{Text: seg})
			} else {
				chunks = append(chunks, Chunk{Number: n, IsNum: true})
			}
		} else {
			chunks = append(chunks, Chunk{Text: strings.ToLower(seg)})
		}
		i = j
	}
	return chunks
}

// Less reports whether a sorts before b under natural ordering.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Compare returns -1, 0 or 1 comparing a and b element-wise by key.
func Compare(a, b string) int {
	ka, kb := Key(a), Key(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		ca, cb := ka[i], kb[i]
		switch {
		case ca.IsNum && cb.IsNum:
			if ca.Number != cb.Number {
				if ca.Number < cb.Number {
					return -1
				}
				return 1
			}
		case ca.IsNum != cb.IsNum:
			// Numbers sort before text at the same position.
			if ca.IsNum {
				return -1
			}
			return 1
		default:
			if ca.Text != cb.Text {
				if ca.Text < cb.Text {
					return -1
				}
				return 1
			}
		}
	}
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
