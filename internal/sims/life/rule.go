package life

import (
	"fmt"
	"strings"
)

// Rule is a life-like birth/survival rule. Bit n of Birth is set when a dead
// cell with n live neighbors is born; bit n of Survive is set when a live cell
// with n live neighbors stays alive.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// HighLife is B36/S23.
var HighLife = Rule{Birth: 1<<3 | 1<<6, Survive: 1<<2 | 1<<3}

// Alive reports whether a cell is alive in the next generation given its
// current state and live neighbor count.
func (r Rule) Alive(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Birth&(1<<neighbors) != 0
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}

// ParseRule parses B/S notation such as "B3/S23". The halves may appear in
// either order and are case-insensitive.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("rule %q: expected B<digits>/S<digits>", s)
	}
	var r Rule
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("rule %q: empty half", s)
		}
		mask, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q: %w", s, err)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, fmt.Errorf("rule %q: duplicate birth half", s)
			}
			seenB = true
			r.Birth = mask
		case 'S', 's':
			if seenS {
				return Rule{}, fmt.Errorf("rule %q: duplicate survival half", s)
			}
			seenS = true
			r.Survive = mask
		default:
			return Rule{}, fmt.Errorf("rule %q: half %q must start with B or S", s, part)
		}
	}
	if r.Birth&1 != 0 {
		return Rule{}, fmt.Errorf("rule %q: B0 would fill the unbounded board", s)
	}
	return r, nil
}

func parseCounts(digits string) (uint16, error) {
	var mask uint16
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return 0, fmt.Errorf("neighbor count %q out of range 0-8", ch)
		}
		mask |= 1 << (ch - '0')
	}
	return mask, nil
}
