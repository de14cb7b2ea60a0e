package dialplan

import "strings"

// checkVariables scans s for ${...} and $[...] interpolation spans and
// reports every span that runs past the end of the string. Nesting is
// tracked per opening token: a ${ inside a ${...} deepens the same span,
// while the two span types never interact. A bare $ is inert.
//
// A defect does not stop the scan; later spans in the same string are still
// inspected and reported independently.
func (v *Validator) checkVariables(s string) bool {
	valid := true

	i := 0
	for i < len(s) {
		j := strings.IndexByte(s[i:], '$')
		if j < 0 {
			break
		}
		i += j

		switch {
		case i+1 < len(s) && s[i+1] == '{':
			i += 2
			depth := 1
			for i < len(s) && depth > 0 {
				switch s[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				i++
			}
			if depth != 0 {
				v.errorf(KindUnclosedVariable)
				valid = false
			}
		case i+1 < len(s) && s[i+1] == '[':
			i += 2
			depth := 1
			for i < len(s) && depth > 0 {
				switch s[i] {
				case '[':
					depth++
				case ']':
					depth--
				}
				i++
			}
			if depth != 0 {
				v.errorf(KindUnclosedExpression)
				valid = false
			}
		default:
			i++
		}
	}

	return valid
}
