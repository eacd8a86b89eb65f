package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

// builtinSeeds cover each grammar area so that a fresh corpus already
// reaches the template, XML, documentation and query code paths.
var builtinSeeds = []string{
	"",
	"import ballerina/io;\npublic function main() { io:println(\"hi\"); }\n",
	"type Color \"red\"|\"green\";\nconst int MAX = 10;\n",
	"function f() { int x = a > > 2; int y = ; }",
	"function f() returns int|error { var r = check g(); return r ?: 0; }",
	"function f() { match x { 1 | 2 => y = 1; var (a, b) if a > 0 => { } } }",
	"function f() { string s = string `a ${b} ${string `c ${d}`}`; }",
	"function f() { xml x = xml `<a:b k=\"${v}\" j='w'><!-- c ${n} --><?p d?>${t}</a:b>`; }",
	"# Doc `x` and type `T`.\n# + a - first\n# + return - sum\nfunction add(int a) returns int { return a; }\n",
	"function f() { forever { from s where s.x > 1 window time(5) as t select t.x, count() as n group by t.x having n > 1 order by n descending output last every 3 seconds => (R[] r) { } } }",
	"function f() { forever { from every e1 followed by e2 [1 .. 3] within 5 minutes select e1.a => (R[] r) { } } }",
	"function f() { transaction with retries = 3 { } onretry { } committed { } aborted { } }",
	"function f() { fork { worker a { 1 -> b; } worker b { int x = <- a; } } }",
	"service s on new http:Listener(9090) { resource function r(http:Caller c) { _ = c->respond(\"ok\"); } }",
	"function f() { (a, {b, c: [d]}) = t; error(r, {code}) = e; }",
	"function f() { foreach var (k, v) in m { } while x { lock { x = x + 1; } } }",
	"}}} garbage ((( ",
	"function f() { if (a { } } type T record { int a; ;",
	"xml `<a`",
	"string `${",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every .bal file under the repository testdata.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".bal" {
			return nil
		}
		// #nosec G304 -- path comes from the repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(src []byte, n int) []byte {
	if len(src) > n {
		src = src[:n]
	}
	return append([]byte(nil), src...)
}
