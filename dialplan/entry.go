package dialplan

import "strings"

// splitClauses cuts an entry's post-arrow data into pattern, priority, and
// action at the first two top-level commas. A comma is top-level only when
// the running paren and bracket depths are both zero. Quotes are not
// considered here; balance validation is a separate step.
func splitClauses(data string) (pattern, priority, action string, ok bool) {
	comma1, comma2 := -1, -1
	parens, brackets := 0, 0

	for i := 0; i < len(data) && comma2 < 0; i++ {
		switch data[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case ',':
			if parens == 0 && brackets == 0 {
				if comma1 < 0 {
					comma1 = i
				} else {
					comma2 = i
				}
			}
		}
	}

	if comma1 < 0 || comma2 < 0 {
		return "", "", "", false
	}

	pattern = strings.TrimSpace(data[:comma1])
	priority = strings.TrimSpace(data[comma1+1 : comma2])
	action = strings.TrimSpace(data[comma2+1:])
	return pattern, priority, action, true
}

// splitContinuation cuts a continuation's post-arrow data at its first
// top-level comma into priority and action. Continuations inherit the
// previous entry's pattern and carry none of their own.
func splitContinuation(data string) (priority, action string, ok bool) {
	comma := -1
	parens, brackets := 0, 0

	for i := 0; i < len(data) && comma < 0; i++ {
		switch data[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case ',':
			if parens == 0 && brackets == 0 {
				comma = i
			}
		}
	}

	if comma < 0 {
		return "", "", false
	}

	priority = strings.TrimSpace(data[:comma])
	action = strings.TrimSpace(data[comma+1:])
	return priority, action, true
}

// parseExtension validates one exten/same line. The checks run in order and
// the first structural failure wins, but the variable-reference scan still
// runs whenever the line split cleanly, so a bad priority does not hide an
// unterminated ${...} later on the same line.
func (v *Validator) parseExtension(line string) bool {
	arrow := strings.Index(line, "=>")
	if arrow < 0 {
		v.errorf(KindMissingArrowExten)
		return false
	}

	isSame := false
	switch {
	case hasPrefixFold(line, "exten"):
	case hasPrefixFold(line, "same"):
		isSame = true
	default:
		v.errorf(KindUnknownKeyword)
		return false
	}

	data := strings.TrimSpace(line[arrow+2:])
	var priority, action string
	var split bool
	if isSame {
		priority, action, split = splitContinuation(data)
	} else {
		_, priority, action, split = splitClauses(data)
	}
	if !split {
		v.errorf(KindBadExtenFormat)
		return false
	}

	ok := true
	if !isSame {
		ok = v.checkPriority(priority)
	}
	if ok && action != "" && strings.IndexByte(action, '(') >= 0 {
		ok = v.checkBalanced(action)
	}

	if !v.checkVariables(data) {
		ok = false
	}
	return ok
}

// checkPriority validates a non-continuation priority clause: "hint", "n",
// or a positive base-10 integer. Text after the numeral is tolerated when it
// opens a parenthesized group ("1(label)"); the group itself is not
// inspected here.
func (v *Validator) checkPriority(s string) bool {
	if s == "hint" || s == "n" {
		return true
	}

	value, rest := leadingInt(s)
	if rest != "" && rest[0] != '(' {
		v.errorf(KindInvalidPriority, s)
		return false
	}
	if value < 1 {
		v.errorf(KindPriorityTooSmall)
		return false
	}
	return true
}

// leadingInt mimics a strtol base-10 parse: optional sign, then digits.
// rest is everything after the numeral; when no digit is consumed the whole
// input comes back as rest and the value is zero.
func leadingInt(s string) (value int64, rest string) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if value < 1<<56 { // saturate far beyond any plausible priority
			value = value*10 + int64(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, s
	}

	if neg {
		value = -value
	}
	return value, s[i:]
}
