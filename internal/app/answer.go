package app

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

var (
	exitKeywords = []string{"quit", "exit"}
	hintKeywords = []string{"help", "clue", "hint"}
)

// NormalizeAnswer trims whitespace and case-folds player input for matching.
func NormalizeAnswer(value string) string {
	return fold(strings.TrimSpace(value))
}

// fold applies full Unicode case folding, so "Straße" and "STRASSE" compare equal.
// A Caser keeps state, so one is built per call.
func fold(value string) string {
	return cases.Fold().String(value)
}

// MatchesAnswer reports whether normalized input contains any accepted answer.
// Matching is substring containment, so "i think paris" matches "Paris".
func MatchesAnswer(normalized string, accepted []string) bool {
	for _, answer := range accepted {
		if strings.Contains(normalized, fold(answer)) {
			return true
		}
	}
	return false
}

func isExitKeyword(normalized string) bool {
	return slices.Contains(exitKeywords, normalized)
}

func isHintKeyword(normalized string) bool {
	return slices.Contains(hintKeywords, normalized)
}
