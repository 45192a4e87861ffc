package scrollstage

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestPackageDocs(t *testing.T) {

	for _, pkg := range []struct {
		dir, name string
	}{
		{".", "scrollstage"},
		{"colors", "colors"},
	} {

		pkgs, err := parser.ParseDir(token.NewFileSet(), pkg.dir, nil, parser.ParseComments|parser.PackageClauseOnly)
		if err != nil {
			t.Fatal(err)
		}

		found := false
		for _, f := range pkgs[pkg.name].Files {
			if f.Doc != nil && strings.HasPrefix(f.Doc.Text(), "Package "+pkg.name+" ") {
				found = true
			}
		}

		if !found {
			t.Errorf("package %s has no doc comment attached to its package clause", pkg.name)
		}

	}

}
