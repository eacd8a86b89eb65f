package parser_test

import (
	"testing"

	"balparse/internal/cst"
	"balparse/internal/diag"
)

func TestTopLevelDefinitions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"import foo;", "ImportDecl(ImportPath)"},
		{"import ballerina/http version 1.2 as h;", "ImportDecl(ImportPath,VersionClause)"},
		{"xmlns \"urn:a\" as a;", "NamespaceDecl"},
		{"type Age int;", "TypeDefinition(BuiltinTypeDesc)"},
		{"type Color \"red\"|\"green\"|int;", "TypeDefinition(FiniteType(\"red\",\"green\",BuiltinTypeDesc))"},
		{"type Small 1|2|-3;", "TypeDefinition(FiniteType(1,2,-3))"},
		{"public const int MAX = 10;", "ConstantDef(BuiltinTypeDesc,CaptureBindingPattern,10)"},
		{"listener http:Listener ep = new(9090);", "ListenerDef(UserDefinedTypeDesc(http:Listener),NewExpr(ArgList(9090)))"},
		{"annotation Info;", "AnnotationDef"},
		{"annotation string Info on service, resource function;", "AnnotationDef(BuiltinTypeDesc,AttachmentPoints)"},
		{"int count = 0;", "GlobalVarDef(BuiltinTypeDesc,0)"},
		{"final var x = f();", "GlobalVarDef(FunctionCallExpr(f,ArgList))"},
		{"public function main(string... args) { }", "FunctionDef(ParameterList(RestParam(BuiltinTypeDesc)),Block)"},
		{"function f(int a, int b = 2) { }", "FunctionDef(ParameterList(RequiredParam(BuiltinTypeDesc),DefaultableParam(BuiltinTypeDesc,2)),Block)"},
		{"function Person.name() returns string = external;", "FunctionDef(ParameterList,ReturnTypeDesc(BuiltinTypeDesc),ExternalBody)"},
		{"@deprecated function f() { }", "FunctionDef(AnnotationAttachment(deprecated),ParameterList,Block)"},
		{
			"service hello on ep { resource function hi(http:Caller c) { } }",
			"ServiceDef(ep,ServiceBody(ObjectMethodDef(ParameterList(RequiredParam(UserDefinedTypeDesc(http:Caller))),Block)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := parseSource(t, tt.src)
			requireClean(t, tt.src, res)
			defs := res.Tree.ChildNodes(res.Root)
			if len(defs) != 1 {
				t.Fatalf("definitions = %d", len(defs))
			}
			if got := shape(res.Tree, defs[0]); got != tt.want {
				t.Errorf("shape = %s\nwant    %s", got, tt.want)
			}
		})
	}
}

func TestDocumentationString(t *testing.T) {
	src := "# Adds `a` to type `T`.\n# + a - the value\n# continued\n# + return - sum\nfunction f(int a) returns int { return a; }"
	res := parseSource(t, src)
	requireClean(t, src, res)
	tr := res.Tree
	fn := tr.FirstChild(res.Root, cst.FunctionDef)
	doc := tr.FirstChild(fn, cst.DocString)
	if doc == cst.NoNodeID {
		t.Fatalf("no doc string: %s", shape(tr, fn))
	}
	want := "DocString(DocLine(DocTypedRef),ParamDocLine(DocLine),ReturnDocLine)"
	if got := shape(tr, doc); got != want {
		t.Errorf("doc = %s\nwant  %s", got, want)
	}
}

func TestDocumentationOrder(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"duplicate return", "# + return - a\n# + return - b\nfunction f() { }"},
		{"param after return", "# + return - a\n# + x - b\nfunction f(int x) { }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseSource(t, tt.src)
			if len(res.Diagnostics) != 1 || res.Diagnostics[0].Code != diag.SynExpectDocLine {
				t.Fatalf("diagnostics = %s", describe(res.Diagnostics))
			}
			if res.Tree.FirstChild(res.Root, cst.FunctionDef) == cst.NoNodeID {
				t.Errorf("definition lost after a documentation error")
			}
		})
	}
}

func TestDanglingMetadataKeepsFollowingDefinitions(t *testing.T) {
	src := "@a\n@b {x: 1}\n42;\nfunction f() { }"
	res := parseSource(t, src)
	if len(res.Diagnostics) == 0 || res.Diagnostics[0].Code != diag.SynDanglingAnnotation {
		t.Fatalf("diagnostics = %s", describe(res.Diagnostics))
	}
	tr := res.Tree
	errs := tr.ChildrenOfKind(res.Root, cst.ErrorNode)
	if len(errs) == 0 || len(tr.ChildrenOfKind(errs[0], cst.AnnotationAttachment)) != 2 {
		t.Errorf("annotations are kept in the error node: %s", shape(tr, res.Root))
	}
	if tr.FirstChild(res.Root, cst.FunctionDef) == cst.NoNodeID {
		t.Errorf("function after the dangling annotations was lost")
	}
	if got := tr.Reconstruct(res.Root); got != src {
		t.Errorf("round trip = %q", got)
	}
}
