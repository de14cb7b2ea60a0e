package dialplan

// checkBalanced verifies that parentheses, brackets, and braces in s pair up
// outside quoted regions and that every quote is closed. The first counter
// to go negative fails the scan immediately; leftover open delimiters are
// reported with all three counter values at the end.
//
// A closing quote is suppressed when the byte directly before it is a
// backslash. This single-byte lookback misreads a literal backslash followed
// by a quote; the behavior is kept as-is because downstream tooling matches
// the diagnostics of the original checker.
func (v *Validator) checkBalanced(s string) bool {
	parens, brackets, braces := 0, 0, 0
	inQuote := false
	var quoteChar byte

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inQuote {
			if ch == quoteChar && s[i-1] != '\\' {
				inQuote = false
			}
			continue
		}

		switch ch {
		case '"', '\'':
			quoteChar = ch
			inQuote = true
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case '{':
			braces++
		case '}':
			braces--
		}

		if parens < 0 || brackets < 0 || braces < 0 {
			v.errorf(KindTooManyClosing)
			return false
		}
	}

	if inQuote {
		v.errorf(KindUnclosedQuote)
		return false
	}

	if parens != 0 || brackets != 0 || braces != 0 {
		v.errorf(KindUnbalancedDelimiters, parens, brackets, braces)
		return false
	}

	return true
}
