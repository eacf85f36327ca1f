package errors

import (
	"fmt"
	"strings"
)

// SuggestKey suggests a likely intended key when an unknown key is
// referenced, using Levenshtein distance over the valid key set. It returns
// the empty string when nothing sensible can be offered.
func SuggestKey(unknown string, validKeys []string) string {
	if len(validKeys) == 0 {
		return ""
	}

	minDistance := len(unknown) + 1
	var bestMatch string
	for _, key := range validKeys {
		if dist := levenshteinDistance(unknown, key); dist < minDistance {
			minDistance = dist
			bestMatch = key
		}
	}

	// Only suggest near matches; a wildly different key would mislead.
	if minDistance > 0 && minDistance < 4 {
		return fmt.Sprintf("did you mean %q?", bestMatch)
	}

	if len(validKeys) > 5 {
		return fmt.Sprintf("valid keys include: %s, ...", strings.Join(validKeys[:5], ", "))
	}
	return fmt.Sprintf("valid keys: %s", strings.Join(validKeys, ", "))
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1, len2 := len(s1), len(s2)
	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len1][len2]
}
