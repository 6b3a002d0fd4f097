package check

import (
	"slices"
	"strings"
	"unicode/utf8"

	sent "github.com/revelaction/strunk/sentence"
)

const DateErr = "You should write dates as 'January 1, 2000' or '1 January 2000'."

var months = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

// dateFormat flags dates written with slashes (MM/DD/YY, DD/MM/YYYY...) and
// dates in the forms "Month D, YYYY" or "D Month YYYY" with misplaced commas.
func (v *Validator) dateFormat() {
	v.eachSentence(func(_ int, toks []sent.Token) {
		for i := 0; i < len(toks)-4; i++ {
			if isSlashDate(toks[i : i+5]) {
				toks[i].AddErr(DateErr)
			}
		}

		for i := 0; i < len(toks)-2; i++ {
			if toks[i].HasErr(DateErr) {
				continue
			}
			if isWrongMonthDayDate(toks[i:]) || isWrongDayMonthDate(toks[i:]) {
				toks[i].AddErr(DateErr)
			}
		}
	})
}

// isSlashDate reports whether toks is A / B / Y, where A and B are in 1..31,
// one of them at most 12, and Y has 2 or 4 digits.
func isSlashDate(toks []sent.Token) bool {
	if len(toks) != 5 || toks[1].Text != "/" || toks[3].Text != "/" {
		return false
	}

	if l := utf8.RuneCountInString(toks[4].Text); l != 2 && l != 4 {
		return false
	}

	left, ok1 := parseLeadingInt(toks[0].Text)
	mid, ok2 := parseLeadingInt(toks[2].Text)
	right, ok3 := parseLeadingInt(toks[4].Text)
	if !ok1 || !ok2 || !ok3 {
		return false
	}

	switch {
	case left < 1 || mid < 1 || right < 0:
		return false
	case left > 31 || mid > 31:
		return false
	case left > 12 && mid > 12:
		return false
	}
	return true
}

func isMonth(w string) bool {
	return slices.Contains(months, w)
}

func isDay(w string) bool {
	n, ok := parseLeadingInt(w)
	return ok && n > 0 && n <= 31
}

func isYear(w string) bool {
	n, ok := parseLeadingInt(w)
	return ok && n >= 1000 && n < 10000
}

// isWrongMonthDayDate reports whether toks starts with a "Month D, YYYY" date
// with the commas misplaced.
func isWrongMonthDayDate(toks []sent.Token) bool {
	correct := func(day, year int) bool {
		return day == 1 && toks[2].Text == "," && year == 3
	}
	return hasAXBXC(toks, isMonth, isDay, isYear, correct)
}

// isWrongDayMonthDate reports whether toks starts with a "D Month YYYY" date
// with commas in it.
func isWrongDayMonthDate(toks []sent.Token) bool {
	correct := func(month, year int) bool {
		return month == 1 && year == 2
	}
	return hasAXBXC(toks, isDay, isMonth, isYear, correct)
}

// hasAXBXC reports whether toks is A [x] B [x] C, each of the gaps at most
// one token, and the positions of B and C are not the correct ones.
func hasAXBXC(toks []sent.Token, isA, isB, isC func(string) bool, correct func(b, c int) bool) bool {
	if !isA(toks[0].Text) {
		return false
	}

	b, c := -1, -1
	for i := 1; i < len(toks); i++ {
		if b == -1 && isB(toks[i].Text) {
			b = i
		} else if c == -1 && isC(toks[i].Text) {
			c = i
			break
		}
	}

	if b == -1 || c == -1 || c < b {
		return false
	}
	if b > 2 || c-b > 2 {
		return false
	}
	return !correct(b, c)
}

// parseLeadingInt parses the optionally signed decimal prefix of s, after
// leading white space: "01" is 1, "2nd" is 2, "x" is not a number.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		if n < 1e9 {
			n = n*10 + int(s[digits]-'0')
		}
	}

	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
