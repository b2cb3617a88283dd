package netfmt

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var netLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.:\-]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type netFile struct {
	Entries []*netEntry `@@*`
}

type netEntry struct {
	Pos lexer.Position

	Node *nodeDecl `  "node" @@`
	Edge *edgeDecl `| "edge" @@`
}

type nodeDecl struct {
	ID    string `@(Ident | Int | String)`
	ISite int    `@Int`
}

type edgeDecl struct {
	From  string     `@(Ident | Int | String)`
	To    string     `@(Ident | Int | String)`
	Delta []int      `(@Int @Int @Int)?`
	Roles *rolesDecl `("roles" @@)?`
}

type rolesDecl struct {
	Start int `@Int`
	End   int `@Int`
}

var parseNet = participle.MustBuild[netFile](
	participle.Lexer(netLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)
