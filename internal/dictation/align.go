package dictation

import "slices"

// Align computes a minimum-edit alignment of user against correct and tags
// every position. Backtrace prefers match, then substitution, then an extra
// user character, then a missing reference character.
func Align(user, correct string) []CharacterDiagnostic {
	u := []rune(user)
	c := []rune(correct)

	if len(u) == 0 {
		out := make([]CharacterDiagnostic, 0, len(c))
		for _, r := range c {
			out = append(out, CharacterDiagnostic{Char: Placeholder, Status: CharMissing, CorrectChar: string(r)})
		}
		return out
	}
	if len(c) == 0 {
		out := make([]CharacterDiagnostic, 0, len(u))
		for _, r := range u {
			out = append(out, CharacterDiagnostic{Char: string(r), Status: CharExtra})
		}
		return out
	}

	dp := distanceTable(u, c)
	out := make([]CharacterDiagnostic, 0, max(len(u), len(c)))
	i, j := len(u), len(c)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && u[i-1] == c[j-1]:
			out = append(out, CharacterDiagnostic{Char: string(u[i-1]), Status: CharCorrect})
			i--
			j--
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+1:
			out = append(out, CharacterDiagnostic{Char: string(u[i-1]), Status: CharIncorrect, CorrectChar: string(c[j-1])})
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			out = append(out, CharacterDiagnostic{Char: string(u[i-1]), Status: CharExtra})
			i--
		default:
			out = append(out, CharacterDiagnostic{Char: Placeholder, Status: CharMissing, CorrectChar: string(c[j-1])})
			j--
		}
	}
	slices.Reverse(out)
	return out
}

// Distance returns the Levenshtein distance between a and b over runes.
func Distance(a, b string) int {
	u := []rune(a)
	c := []rune(b)
	if len(u) == 0 {
		return len(c)
	}
	if len(c) == 0 {
		return len(u)
	}
	return distanceTable(u, c)[len(u)][len(c)]
}

func distanceTable(u, c []rune) [][]int {
	dp := make([][]int, len(u)+1)
	for i := range dp {
		dp[i] = make([]int, len(c)+1)
		dp[i][0] = i
	}
	for j := 0; j <= len(c); j++ {
		dp[0][j] = j
	}
	for i := 1; i <= len(u); i++ {
		for j := 1; j <= len(c); j++ {
			if u[i-1] == c[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = 1 + min(dp[i-1][j-1], dp[i-1][j], dp[i][j-1])
		}
	}
	return dp
}
