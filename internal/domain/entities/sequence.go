package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const defaultSequenceWidth = 5

var yearPairPattern = regexp.MustCompile(`(\d{2,4})-(\d{2,4})`)

// NextIdentifier renders the display number for a server-owned counter using
// the resource's format template (e.g. 7 + "25-26/00001" -> "25-26/00007").
//
// Rules:
//   - empty template: plain decimal counter;
//   - a year-range token ("YY-YY"/"YYYY-YYYY" literals, or an existing pair of
//     consecutive years) is replaced with the current and next year at the
//     same width, taken from the wall clock at format time;
//   - the template's final maximal digit run outside the year token is the
//     sequential placeholder: its width sets the zero padding;
//   - without any digit run the counter is appended, zero-padded to width 5.
func NextIdentifier(counter int64, template string) string {
	return nextIdentifierAt(counter, template, time.Now())
}

func nextIdentifierAt(counter int64, template string, now time.Time) string {
	if template == "" {
		return strconv.FormatInt(counter, 10)
	}

	tpl, yearStart, yearEnd := substituteYearToken(template, now.Year())

	runStart, runEnd := lastDigitRunOutside(tpl, yearStart, yearEnd)
	if runStart < 0 {
		return tpl + fmt.Sprintf("%0*d", defaultSequenceWidth, counter)
	}
	return tpl[:runStart] + fmt.Sprintf("%0*d", runEnd-runStart, counter) + tpl[runEnd:]
}

// substituteYearToken rewrites the year-range token in place and reports its
// span. The replacement always matches the token's width, so positions in the
// returned template line up with the original.
func substituteYearToken(template string, year int) (string, int, int) {
	next := year + 1

	if i := strings.Index(template, "YYYY-YYYY"); i >= 0 {
		sub := fmt.Sprintf("%04d-%04d", year, next)
		return template[:i] + sub + template[i+len(sub):], i, i + len(sub)
	}
	if i := strings.Index(template, "YY-YY"); i >= 0 {
		sub := fmt.Sprintf("%02d-%02d", year%100, next%100)
		return template[:i] + sub + template[i+len(sub):], i, i + len(sub)
	}

	for _, m := range yearPairPattern.FindAllStringSubmatchIndex(template, -1) {
		first := template[m[2]:m[3]]
		second := template[m[4]:m[5]]
		if len(first) != len(second) {
			continue
		}
		a, _ := strconv.Atoi(first)
		b, _ := strconv.Atoi(second)
		var sub string
		switch len(first) {
		case 2:
			if (a+1)%100 != b {
				continue
			}
			sub = fmt.Sprintf("%02d-%02d", year%100, next%100)
		case 4:
			if a+1 != b {
				continue
			}
			sub = fmt.Sprintf("%04d-%04d", year, next)
		default:
			continue
		}
		return template[:m[0]] + sub + template[m[1]:], m[0], m[1]
	}

	return template, -1, -1
}

// lastDigitRunOutside finds the final maximal digit run that does not overlap
// the [yearStart, yearEnd) span. Returns (-1, -1) when none exists.
func lastDigitRunOutside(s string, yearStart, yearEnd int) (int, int) {
	bestStart, bestEnd := -1, -1
	i := 0
	for i < len(s) {
		if s[i] < '0' || s[i] > '9' {
			i++
			continue
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if yearStart >= 0 && start < yearEnd && i > yearStart {
			continue
		}
		bestStart, bestEnd = start, i
	}
	return bestStart, bestEnd
}
