package parser_test

import (
	"testing"

	"balparse/internal/cst"
)

func TestStatementDisambiguation(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"int x = 1;", "VarDef(BuiltinTypeDesc,CaptureBindingPattern,1)"},
		{"int x;", "VarDef(BuiltinTypeDesc,CaptureBindingPattern)"},
		{"Person p = new;", "VarDef(UserDefinedTypeDesc(Person),CaptureBindingPattern,NewExpr)"},
		{"http:Client c = new(url);", "VarDef(UserDefinedTypeDesc(http:Client),CaptureBindingPattern,NewExpr(ArgList(url)))"},
		{"var x = f();", "VarDef(CaptureBindingPattern,FunctionCallExpr(f,ArgList))"},
		{"final var x = 1;", "VarDef(CaptureBindingPattern,1)"},
		{"const int K = 1;", "VarDef(BuiltinTypeDesc,CaptureBindingPattern,1)"},
		{"int[] xs = [];", "VarDef(ArrayTypeDesc(BuiltinTypeDesc),CaptureBindingPattern,ListConstructorExpr)"},
		{"(int, string) (a, b) = t;", "VarDef(TupleTypeDesc(BuiltinTypeDesc,BuiltinTypeDesc),TupleBindingPattern(CaptureBindingPattern,CaptureBindingPattern),t)"},
		{"x = 1;", "AssignmentStmt(x,1)"},
		{"a.b[0] = c;", "AssignmentStmt(IndexAccessExpr(FieldAccessExpr(a),0),c)"},
		{"x += 2;", "CompoundAssignmentStmt(x,2)"},
		{"x <<= 2;", "CompoundAssignmentStmt(x,2)"},
		{"f(x);", "ExprStmt(FunctionCallExpr(f,ArgList(x)))"},
		{"io:println(x);", "ExprStmt(FunctionCallExpr(io:println,ArgList(x)))"},
		{"(a, b) = t;", "TupleDestructureStmt(TupleRefPattern(a,b),t)"},
		{"{name, age: a} = p;", "RecordDestructureStmt(RecordRefPattern(FieldRefPattern,FieldRefPattern(a)),p)"},
		{"error(r, d) = e;", "ErrorDestructureStmt(ErrorRefPattern(r,d),e)"},
		{"x -> w1;", "WorkerSendStmt(x)"},
		{"x -> w1, k;", "WorkerSendStmt(x,k)"},
		{"return;", "ReturnStmt"},
		{"return a + b;", "ReturnStmt(BinaryAddExpr(a,b))"},
		{"throw e;", "ThrowStmt(e)"},
		{"panic e;", "PanicStmt(e)"},
		{"break;", "BreakStmt"},
		{"continue;", "ContinueStmt"},
		{"abort;", "AbortStmt"},
		{"retry;", "RetryStmt"},
		{"while x { x = 1; }", "WhileStmt(x,Block(AssignmentStmt(x,1)))"},
		{"lock { x = 1; }", "LockStmt(Block(AssignmentStmt(x,1)))"},
		{"xmlns \"http://a\" as ns;", "NamespaceDecl"},
		{"if a { } else if b { } else { }", "IfElseStmt(IfClause(a,Block),ElseIfClause(b,Block),ElseClause(Block))"},
		{"foreach var x in xs { }", "ForeachStmt(CaptureBindingPattern,xs,Block)"},
		{"foreach int i in 0 ..< n { }", "ForeachStmt(BuiltinTypeDesc,CaptureBindingPattern,RangeExpr(0,n),Block)"},
		{"foreach (int i in xs) { }", "ForeachStmt(BuiltinTypeDesc,CaptureBindingPattern,xs,Block)"},
		{"foreach (int, string) (a, b) in m { }", "ForeachStmt(TupleTypeDesc(BuiltinTypeDesc,BuiltinTypeDesc),TupleBindingPattern(CaptureBindingPattern,CaptureBindingPattern),m,Block)"},
		{"worker w1 returns int { return 1; }", "WorkerDecl(ReturnTypeDesc(BuiltinTypeDesc),Block(ReturnStmt(1)))"},
		{"fork { worker a { } worker b { } }", "ForkJoinStmt(WorkerDecl(Block),WorkerDecl(Block))"},
		{"try { } catch (error e) { } finally { }", "TryCatchStmt(Block,CatchClause(ErrorTypeDesc,Block),FinallyClause(Block))"},
		{"transaction with retries = 3 { } onretry { } committed { } aborted { }", "TransactionStmt(TransactionProps(3),Block,OnRetryClause(Block),CommittedClause(Block),AbortedClause(Block))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := parseStmt(t, tt.src)
			requireClean(t, tt.src, res)
			if got := shape(res.Tree, res.Root); got != tt.want {
				t.Errorf("shape = %s\nwant    %s", got, tt.want)
			}
		})
	}
}

func TestMatchStatement(t *testing.T) {
	src := `match x {
		1 | 2 | "a" => y = 1;
		var (a, b) if a > 0 => { }
		var s => return;
	}`
	res := parseStmt(t, src)
	requireClean(t, src, res)
	tr := res.Tree
	clauses := tr.ChildrenOfKind(res.Root, cst.MatchClause)
	if len(clauses) != 3 {
		t.Fatalf("clauses = %d", len(clauses))
	}
	want := []string{
		"MatchClause(StaticMatchPattern(1,2,\"a\"),AssignmentStmt(y,1))",
		"MatchClause(VarMatchPattern(TupleBindingPattern(CaptureBindingPattern,CaptureBindingPattern),CompareExpr(a,0)),Block)",
		"MatchClause(VarMatchPattern(CaptureBindingPattern),ReturnStmt)",
	}
	for i, c := range clauses {
		if got := shape(tr, c); got != want[i] {
			t.Errorf("clause %d = %s\nwant       %s", i, got, want[i])
		}
	}
}

func TestExpressionReusedAsAssignmentTarget(t *testing.T) {
	res := parseStmt(t, "a.b.c = 1;")
	requireClean(t, "a.b.c = 1;", res)
	tr := res.Tree
	lhs := tr.ChildNodes(res.Root)[0]
	if tr.Kind(lhs) != cst.FieldAccessExpr {
		t.Fatalf("lhs = %s", tr.Kind(lhs))
	}
	// The target is built once; no discarded subtrees are left behind.
	if got := tr.Nodes.Len(); got != 5 {
		t.Errorf("nodes = %d, want 5", got)
	}
}
