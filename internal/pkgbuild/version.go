package pkgbuild

// Version holds the two version fields extracted from a PKGBUILD.
type Version struct {
	// Pkgver is the upstream version, e.g. "1.2.3"
	Pkgver string
	// Pkgrel is the package release counter, e.g. "2"
	Pkgrel string
}

// String returns the canonical "pkgver-pkgrel" form.
func (v Version) String() string {
	return v.Pkgver + "-" + v.Pkgrel
}

// Equal reports whether both fields match exactly.
// Comparison is structural: "1.0" and "1.00" are different versions.
func (v Version) Equal(other Version) bool {
	return v.Pkgver == other.Pkgver && v.Pkgrel == other.Pkgrel
}
