package mention

import "strings"

// Context describes the in-progress mention candidate under the caret.
//
// Range covers the raw matched substring including the trigger; Filter is
// the trigger-and-newline-stripped text the host should narrow candidate
// results with. Filter may be empty right after the trigger is typed.
type Context struct {
	Trigger string
	Filter  string
	Range   Range
}

// detectTrigger scans the prefix of text up to the end of the selection for
// the nearest preceding trigger occurrence that opens a valid mention
// context.
//
// A trigger at location 0 is always a valid boundary; elsewhere the single
// code unit immediately before it must be a space or newline. When several
// triggers are configured, the rightmost occurrence wins regardless of
// which trigger matched.
func detectTrigger(text []rune, sel Range, triggers []string, searchSpaces bool) (Context, bool) {
	end := sel.End()
	if end < 0 {
		return Context{}, false
	}
	if end > len(text) {
		end = len(text)
	}
	prefix := text[:end]

	loc := -1
	trigger := ""
	for _, t := range triggers {
		if t == "" {
			continue
		}
		if at := lastIndexRunes(prefix, []rune(t)); at > loc {
			loc = at
			trigger = t
		}
	}
	if loc < 0 {
		return Context{}, false
	}

	boundary := "\n"
	if loc > 0 {
		prev := prefix[loc-1]
		if prev != ' ' && prev != '\n' {
			return Context{}, false
		}
		boundary = string(prev)
	}

	var raw string
	if searchSpaces {
		raw = string(prefix[loc:])
	} else {
		chunks := strings.Split(string(prefix), boundary)
		words := strings.Split(chunks[len(chunks)-1], " ")
		raw = words[len(words)-1]
		// A boundary character inside the mention text itself would leave
		// a chunk without the trigger; reject it.
		if !strings.Contains(raw, trigger) {
			return Context{}, false
		}
	}
	if raw == "" {
		return Context{}, false
	}

	rawRunes := []rune(raw)
	at := lastIndexRunes(prefix, rawRunes)
	if at < 0 {
		return Context{}, false
	}

	filter := strings.ReplaceAll(raw, trigger, "")
	filter = strings.ReplaceAll(filter, "\n", "")

	return Context{
		Trigger: trigger,
		Filter:  filter,
		Range:   Range{Location: at, Length: len(rawRunes)},
	}, true
}

// lastIndexRunes returns the start of the last occurrence of needle in
// haystack, or -1.
func lastIndexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for at := len(haystack) - len(needle); at >= 0; at-- {
		match := true
		for i, r := range needle {
			if haystack[at+i] != r {
				match = false
				break
			}
		}
		if match {
			return at
		}
	}
	return -1
}
