package model1

import (
	"strings"

	"github.com/fvbommel/sortorder"
)

// Less returns true if v1 sorts before v2. Equal values fall back to the
// row ids to keep the ordering total and the sort stable across runs.
func Less(isNumber bool, id1, id2, v1, v2 string) bool {
	if v1 == v2 {
		return sortorder.NaturalLess(id1, id2)
	}
	if isNumber {
		return lessNumber(v1, v2)
	}
	return sortorder.NaturalLess(v1, v2)
}

func lessNumber(s1, s2 string) bool {
	v1, v2 := strings.ReplaceAll(s1, ",", ""), strings.ReplaceAll(s2, ",", "")
	return sortorder.NaturalLess(v1, v2)
}
