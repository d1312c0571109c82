package mention

// Entity identifies something that can be mentioned. Implementations carry
// their own identifying data; the package only reads the display name and
// passes the value back to the host untouched.
type Entity interface {
	// MentionName returns the display text inserted into the buffer when
	// the entity is committed as a mention.
	MentionName() string
}

// Mention is a committed, atomic text span bound to an Entity.
//
// Text is the literal substring the span covers in the host buffer. It is
// kept in sync by range adjustment: a mention is either fully intact or
// dropped, never truncated in place.
type Mention struct {
	Range  Range
	Text   string
	Entity Entity
}

// Attributes is an opaque set of style tags the host applies to a range.
// The listener only decides which ranges get which set; rendering is the
// host's concern.
type Attributes map[string]any

// attributesConsistent reports whether the two sets use identical keys.
// Default and mention attributes must agree on keys so that restoring the
// default set fully undoes mention styling.
func attributesConsistent(def, men Attributes) bool {
	if len(def) != len(men) {
		return false
	}
	for k := range def {
		if _, ok := men[k]; !ok {
			return false
		}
	}
	return true
}
