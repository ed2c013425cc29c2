package cache

import "strings"

// Key prefixes, also used as the keyType reported to cache hooks.
const (
	KeyTypeCount   = "count"
	KeyTypeCheeger = "cheeger"
)

// Keyer derives cache keys from analysis inputs.
type Keyer interface {
	// CountKey keys the result of counting degree-regular graphs on order
	// nodes.
	CountKey(order, degree int) string

	// CheegerKey keys the exact Cheeger constant of the graph whose graph6
	// encoding is form.
	CheegerKey(form string) string
}

// DefaultKeyer hashes inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// CountKey implements [Keyer].
func (DefaultKeyer) CountKey(order, degree int) string {
	return hashKey(KeyTypeCount, order, degree)
}

// CheegerKey implements [Keyer].
func (DefaultKeyer) CheegerKey(form string) string {
	return hashKey(KeyTypeCheeger, form)
}

// KeyType returns the prefix of a key produced by a [Keyer], with any scope
// removed.
func KeyType(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		key = key[:i]
	}
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		key = key[i+1:]
	}
	return key
}
