package parser_test

import (
	"testing"

	"balparse/internal/cst"
	"balparse/internal/diag"
)

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "BinaryAddExpr(a,BinaryMulExpr(b,c))"},
		{"a * b + c", "BinaryAddExpr(BinaryMulExpr(a,b),c)"},
		{"a - b - c", "BinaryAddExpr(BinaryAddExpr(a,b),c)"},
		{"a || b && c", "LogicalOrExpr(a,LogicalAndExpr(b,c))"},
		{"a == b < c", "EqualityExpr(a,CompareExpr(b,c))"},
		{"a === b == c", "RefEqualityExpr(a,EqualityExpr(b,c))"},
		{"a & b == c", "BitwiseExpr(a,EqualityExpr(b,c))"},
		{"a ? b : c ? d : e", "TernaryExpr(a,b,TernaryExpr(c,d,e))"},
		{"a ?: b ?: c", "ElvisExpr(ElvisExpr(a,b),c)"},
		{"a ?: b || c", "ElvisExpr(a,LogicalOrExpr(b,c))"},
		{"x is int && y", "LogicalAndExpr(TypeTestExpr(x,BuiltinTypeDesc),y)"},
		{"x is int ? 1 : 2", "TernaryExpr(TypeTestExpr(x,BuiltinTypeDesc),1,2)"},
		{"x is int? && y", "LogicalAndExpr(TypeTestExpr(x,NullableTypeDesc(BuiltinTypeDesc)),y)"},
		{"-a + b", "BinaryAddExpr(UnaryExpr(a),b)"},
		{"-a is int", "TypeTestExpr(UnaryExpr(a),BuiltinTypeDesc)"},
		{"a << 2 + 1", "ShiftExpr(a,BinaryAddExpr(2,1))"},
		{"a >>> b", "ShiftExpr(a,b)"},
		{"a > b", "CompareExpr(a,b)"},
		{"1 ... 5", "RangeExpr(1,5)"},
		{"a + 1 ..< b", "RangeExpr(BinaryAddExpr(a,1),b)"},
		{"<int>a + b", "BinaryAddExpr(TypeConversionExpr(BuiltinTypeDesc,a),b)"},
		{"check f(x) + 1", "BinaryAddExpr(CheckExpr(FunctionCallExpr(f,ArgList(x))),1)"},
		{"trap a + b", "TrapExpr(BinaryAddExpr(a,b))"},
		{"x ->> w", "SyncSendExpr(x)"},
		{"a.b.c(1)[0]", "IndexAccessExpr(MethodCallExpr(FieldAccessExpr(a),ArgList(1)),0)"},
		{"a?.b", "FieldAccessExpr(a)"},
		{"x@[\"k\"]", "XMLAttribAccessExpr(x,\"k\")"},
		{"ep->get(\"/\")", "ActionInvocationExpr(ep,ArgList(\"/\"))"},
		{"start f()", "StartExpr(FunctionCallExpr(f,ArgList))"},
		{"wait f1", "WaitExpr(f1)"},
		{"wait {a: f1, f2}", "WaitForAllExpr(WaitKeyValue(f1),WaitKeyValue)"},
		{"<- w1", "WorkerReceiveExpr"},
		{"flush w1", "FlushExpr"},
		{"io:println", "io:println"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := parseExpr(t, tt.src)
			requireClean(t, tt.src, res)
			if got := shape(res.Tree, res.Root); got != tt.want {
				t.Errorf("shape = %s\nwant    %s", got, tt.want)
			}
		})
	}
}

func TestExpressionPrimaries(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"()", "NilLiteral"},
		{"(a)", "GroupExpr(a)"},
		{"(a, b)", "TupleExpr(a,b)"},
		{"[1, 2]", "ListConstructorExpr(1,2)"},
		{"{a: 1, \"b\": 2, [k]: 3}", "RecordLiteral(RecordKeyValue(a,1),RecordKeyValue(\"b\",2),RecordKeyValue(ComputedKey(k),3))"},
		{"x => x + 1", "ArrowFunction(ArrowParams(CaptureBindingPattern),BinaryAddExpr(x,1))"},
		{"(a, b) => a", "ArrowFunction(ArrowParams(CaptureBindingPattern,CaptureBindingPattern),a)"},
		{"function (int a) returns int { return a; }", "LambdaFunction(ParameterList(RequiredParam(BuiltinTypeDesc)),ReturnTypeDesc(BuiltinTypeDesc),Block(ReturnStmt(a)))"},
		{"new", "NewExpr"},
		{"new Person(1)", "NewExpr(UserDefinedTypeDesc(Person),ArgList(1))"},
		{"error(\"r\", message = m)", "ErrorConstructorExpr(ArgList(\"r\",NamedArg(m)))"},
		{"f(...xs)", "FunctionCallExpr(f,ArgList(RestArg(xs)))"},
		{"int", "TypeDescExpr(BuiltinTypeDesc)"},
		{"true", "true"},
		{"-1", "UnaryExpr(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := parseExpr(t, tt.src)
			requireClean(t, tt.src, res)
			if got := shape(res.Tree, res.Root); got != tt.want {
				t.Errorf("shape = %s\nwant    %s", got, tt.want)
			}
		})
	}
}

func TestTableLiteral(t *testing.T) {
	src := "table { { key id, name }, [ { 1, \"a\" }, { 2, \"b\" } ] }"
	res := parseExpr(t, src)
	requireClean(t, src, res)
	tr := res.Tree
	if tr.Kind(res.Root) != cst.TableLiteral {
		t.Fatalf("root = %s", tr.Kind(res.Root))
	}
	if cols := tr.FindAll(res.Root, cst.TableColumn); len(cols) != 2 {
		t.Errorf("columns = %d", len(cols))
	}
	if rows := tr.FindAll(res.Root, cst.TableData); len(rows) != 2 {
		t.Errorf("rows = %d", len(rows))
	}
}

func TestShiftAdjacency(t *testing.T) {
	res := parseExpr(t, "a > > 2")
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Code != diag.SynAdjacentShift {
		t.Fatalf("diagnostics = %s", describe(res.Diagnostics))
	}
	if got := shape(res.Tree, res.Root); got != "ShiftExpr(a,2)" {
		t.Errorf("shape = %s", got)
	}
}

func TestQualifiedNameNeedsAdjacentColon(t *testing.T) {
	res := parseExpr(t, "c ? a : b")
	requireClean(t, "c ? a : b", res)
	if got := shape(res.Tree, res.Root); got != "TernaryExpr(c,a,b)" {
		t.Errorf("shape = %s", got)
	}
}
