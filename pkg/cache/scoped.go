package cache

// ScopedKeyer wraps a Keyer with a prefix. The command-line tool scopes keys
// by release so that a new version never reads entries written in an
// encoding it no longer understands.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// CountKey generates a prefixed key for count results.
func (k *ScopedKeyer) CountKey(order, degree int) string {
	return k.prefix + k.inner.CountKey(order, degree)
}

// CheegerKey generates a prefixed key for Cheeger constants.
func (k *ScopedKeyer) CheegerKey(form string) string {
	return k.prefix + k.inner.CheegerKey(form)
}
