package parser_test

import "testing"

func TestTypeDescriptors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"int[][]|string?", "NullableTypeDesc(UnionTypeDesc(ArrayTypeDesc(ArrayTypeDesc(BuiltinTypeDesc)),BuiltinTypeDesc))"},
		{"int?[]", "ArrayTypeDesc(NullableTypeDesc(BuiltinTypeDesc))"},
		{"int|string|boolean", "UnionTypeDesc(BuiltinTypeDesc,BuiltinTypeDesc,BuiltinTypeDesc)"},
		{"int[3]", "ArrayTypeDesc(BuiltinTypeDesc)"},
		{"int[N]", "ArrayTypeDesc(BuiltinTypeDesc,N)"},
		{"map<int>", "MapTypeDesc(BuiltinTypeDesc)"},
		{"map<map<int>>", "MapTypeDesc(MapTypeDesc(BuiltinTypeDesc))"},
		{"future", "FutureTypeDesc"},
		{"error<string, map<any>>", "ErrorTypeDesc(BuiltinTypeDesc,MapTypeDesc(BuiltinTypeDesc))"},
		{"xml<book>", "XmlTypeDesc"},
		{"()", "NilTypeDesc"},
		{"(int)", "ParenTypeDesc(BuiltinTypeDesc)"},
		{"(int, string...)", "TupleTypeDesc(BuiltinTypeDesc,TupleRestDesc(BuiltinTypeDesc))"},
		{"http:Client", "UserDefinedTypeDesc(http:Client)"},
		{"record { int a; string b?; float...; }", "RecordTypeDesc(RecordFieldDef(BuiltinTypeDesc),RecordFieldDef(BuiltinTypeDesc),RecordRestField(BuiltinTypeDesc))"},
		{"record {| int a = 1; !...; |}", "ClosedRecordTypeDesc(RecordFieldDef(BuiltinTypeDesc,1),SealedRestField)"},
		{"record { *Person; }", "RecordTypeDesc(TypeReference(Person))"},
		{"function (int, string) returns boolean", "FunctionTypeDesc(ParameterList(RequiredParam(BuiltinTypeDesc),RequiredParam(BuiltinTypeDesc)),ReturnTypeDesc(BuiltinTypeDesc))"},
		{"abstract client object { public int x; remote function f(); }", "ObjectTypeDesc(ObjectFieldDef(BuiltinTypeDesc),ObjectMethodDef(ParameterList))"},
		{"object { function (int) returns int cb; }", "ObjectTypeDesc(ObjectFieldDef(FunctionTypeDesc(ParameterList(RequiredParam(BuiltinTypeDesc)),ReturnTypeDesc(BuiltinTypeDesc))))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := parseType(t, tt.src)
			requireClean(t, tt.src, res)
			if got := shape(res.Tree, res.Root); got != tt.want {
				t.Errorf("shape = %s\nwant    %s", got, tt.want)
			}
		})
	}
}
