package pkgbuild

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genPkgver generates valid pkgver values (digit followed by digits and dots)
func genPkgver() gopter.Gen {
	versions := []interface{}{
		"1", "3", "10", "99",
		"1.0", "2.1", "10.5", "0.9",
		"1.2.3", "1.02.3.4", "120.0.6099.109",
		"2024.01.01", "5.15.0",
	}
	return gen.OneConstOf(versions...)
}

// genPkgrel generates valid pkgrel values (one or more digits)
func genPkgrel() gopter.Gen {
	rels := []interface{}{"1", "2", "3", "10", "42", "100"}
	return gen.OneConstOf(rels...)
}

// genNoise generates PKGBUILD lines that must not confuse the parser
func genNoise() gopter.Gen {
	lines := []interface{}{
		"pkgname=example",
		"# comment line",
		"pkgdesc=\"some package\"",
		"arch=('x86_64')",
		"depends=('glibc' 'zlib')",
		"  pkgver=8.8.8",
		"source=(\"https://example.com/$pkgname-$pkgver.tar.gz\")",
		"build() {",
		"  make PREFIX=/usr",
		"}",
		"",
	}
	return gen.OneConstOf(lines...)
}

// TestPropertyParseFindsAnchoredAssignments checks that any PKGBUILD built
// from valid pkgver/pkgrel assignments plus arbitrary other lines parses to
// the expected canonical version, in either field order.
func TestPropertyParseFindsAnchoredAssignments(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("extraction yields pkgver-pkgrel", prop.ForAll(
		func(pkgver, pkgrel, before, between, after string, relFirst bool) bool {
			first := "pkgver=" + pkgver
			second := "pkgrel=" + pkgrel
			if relFirst {
				first, second = second, first
			}
			content := strings.Join([]string{before, first, between, second, after}, "\n")

			ver, err := Parse(content)
			if err != nil {
				return false
			}
			return ver.String() == pkgver+"-"+pkgrel
		},
		genPkgver(),
		genPkgrel(),
		genNoise(),
		genNoise(),
		genNoise(),
		gen.Bool(),
	))

	properties.Property("extraction is idempotent", prop.ForAll(
		func(pkgver, pkgrel string) bool {
			content := "pkgver=" + pkgver + "\npkgrel=" + pkgrel + "\n"
			first, err1 := Parse(content)
			second, err2 := Parse(content)
			return err1 == nil && err2 == nil && first == second
		},
		genPkgver(),
		genPkgrel(),
	))

	properties.Property("equality matches field equality", prop.ForAll(
		func(ver1, rel1, ver2, rel2 string) bool {
			a := Version{Pkgver: ver1, Pkgrel: rel1}
			b := Version{Pkgver: ver2, Pkgrel: rel2}
			return a.Equal(b) == (ver1 == ver2 && rel1 == rel2)
		},
		genPkgver(),
		genPkgrel(),
		genPkgver(),
		genPkgrel(),
	))

	properties.TestingRun(t)
}
