package cst

import "strconv"

// Kind tags a node with the grammar rule or alternative that produced it.
type Kind uint16

const (
	Invalid Kind = iota
	// ErrorNode wraps tokens skipped during recovery.
	ErrorNode

	// top level
	CompilationUnit
	ImportDecl
	ImportPath
	VersionClause
	NamespaceDecl
	AnnotationAttachment
	TypeDefinition
	FiniteType
	ConstantDef
	GlobalVarDef
	ListenerDef
	AnnotationDef
	AttachmentPoints
	ServiceDef
	ServiceBody
	FunctionDef
	ExternalBody
	ParameterList
	RequiredParam
	DefaultableParam
	RestParam
	ReturnTypeDesc
	WorkerDecl
	ObjectFieldDef
	ObjectMethodDef
	TypeReference
	RecordFieldDef
	RecordRestField
	SealedRestField

	// type descriptors
	BuiltinTypeDesc
	UserDefinedTypeDesc
	NilTypeDesc
	ParenTypeDesc
	TupleTypeDesc
	TupleRestDesc
	ObjectTypeDesc
	RecordTypeDesc
	ClosedRecordTypeDesc
	ErrorTypeDesc
	FunctionTypeDesc
	MapTypeDesc
	FutureTypeDesc
	TypedescTypeDesc
	StreamTypeDesc
	TableTypeDesc
	XmlTypeDesc
	ArrayTypeDesc
	UnionTypeDesc
	NullableTypeDesc

	// literals and names
	IntLiteral
	FloatLiteral
	StringLiteral
	BooleanLiteral
	NullLiteral
	NilLiteral
	BlobLiteral
	// NameRef is an optionally package-qualified identifier.
	NameRef

	// expressions
	FieldAccessExpr
	IndexAccessExpr
	XMLAttribAccessExpr
	MethodCallExpr
	FunctionCallExpr
	ActionInvocationExpr
	ArgList
	NamedArg
	RestArg
	ListConstructorExpr
	RecordLiteral
	RecordKeyValue
	ComputedKey
	TableLiteral
	TableColumns
	TableColumn
	TableDataArray
	TableData
	StartExpr
	LambdaFunction
	ArrowFunction
	ArrowParams
	NewExpr
	ErrorConstructorExpr
	ServiceConstructorExpr
	TrapExpr
	CheckExpr
	CheckPanicExpr
	WaitExpr
	WaitForAllExpr
	WaitKeyValue
	WorkerReceiveExpr
	FlushExpr
	TypeConversionExpr
	UnaryExpr
	GroupExpr
	TupleExpr
	TypeDescExpr
	BinaryMulExpr
	BinaryAddExpr
	ShiftExpr
	RangeExpr
	CompareExpr
	TypeTestExpr
	EqualityExpr
	RefEqualityExpr
	BitwiseExpr
	LogicalAndExpr
	LogicalOrExpr
	ElvisExpr
	TernaryExpr
	SyncSendExpr

	// templates
	StringTemplate
	TemplateInterp
	XMLLiteral
	XMLElement
	XMLStartTag
	XMLEndTag
	XMLEmptyTag
	XMLAttribute
	XMLQuotedString
	XMLQualifiedName
	XMLText
	XMLComment
	XMLProcIns

	// statements
	Block
	VarDef
	AssignmentStmt
	CompoundAssignmentStmt
	TupleDestructureStmt
	RecordDestructureStmt
	ErrorDestructureStmt
	IfElseStmt
	IfClause
	ElseIfClause
	ElseClause
	MatchStmt
	MatchClause
	StaticMatchPattern
	VarMatchPattern
	ForeachStmt
	WhileStmt
	ContinueStmt
	BreakStmt
	ForkJoinStmt
	TryCatchStmt
	CatchClause
	FinallyClause
	ThrowStmt
	PanicStmt
	ReturnStmt
	WorkerSendStmt
	ExprStmt
	TransactionStmt
	TransactionProps
	OnRetryClause
	CommittedClause
	AbortedClause
	AbortStmt
	RetryStmt
	LockStmt
	ForeverStmt
	StreamingQueryStmt

	// binding patterns
	CaptureBindingPattern
	TupleBindingPattern
	RecordBindingPattern
	ClosedRecordBindingPattern
	FieldBindingPattern
	RestBindingPattern
	ErrorBindingPattern
	TupleRefPattern
	RecordRefPattern
	ClosedRecordRefPattern
	FieldRefPattern
	RestRefPattern
	ErrorRefPattern

	// streaming queries
	TableQueryExpr
	StreamingInput
	WhereClause
	StreamInvocation
	WindowClause
	AliasClause
	JoinStreamingInput
	JoinType
	OnClause
	PatternClause
	PatternStreamingInput
	PatternEdge
	IntRange
	WithinClause
	SelectClause
	SelectExpr
	GroupByClause
	HavingClause
	OrderByClause
	OrderByVariable
	LimitClause
	OutputRateLimit
	StreamingAction

	// documentation
	DocString
	DocLine
	ParamDocLine
	ReturnDocLine
	DocTypedRef

	kindCount
)

var kindNames = [...]string{
	Invalid:                    "Invalid",
	ErrorNode:                  "ErrorNode",
	CompilationUnit:            "CompilationUnit",
	ImportDecl:                 "ImportDecl",
	ImportPath:                 "ImportPath",
	VersionClause:              "VersionClause",
	NamespaceDecl:              "NamespaceDecl",
	AnnotationAttachment:       "AnnotationAttachment",
	TypeDefinition:             "TypeDefinition",
	FiniteType:                 "FiniteType",
	ConstantDef:                "ConstantDef",
	GlobalVarDef:               "GlobalVarDef",
	ListenerDef:                "ListenerDef",
	AnnotationDef:              "AnnotationDef",
	AttachmentPoints:           "AttachmentPoints",
	ServiceDef:                 "ServiceDef",
	ServiceBody:                "ServiceBody",
	FunctionDef:                "FunctionDef",
	ExternalBody:               "ExternalBody",
	ParameterList:              "ParameterList",
	RequiredParam:              "RequiredParam",
	DefaultableParam:           "DefaultableParam",
	RestParam:                  "RestParam",
	ReturnTypeDesc:             "ReturnTypeDesc",
	WorkerDecl:                 "WorkerDecl",
	ObjectFieldDef:             "ObjectFieldDef",
	ObjectMethodDef:            "ObjectMethodDef",
	TypeReference:              "TypeReference",
	RecordFieldDef:             "RecordFieldDef",
	RecordRestField:            "RecordRestField",
	SealedRestField:            "SealedRestField",
	BuiltinTypeDesc:            "BuiltinTypeDesc",
	UserDefinedTypeDesc:        "UserDefinedTypeDesc",
	NilTypeDesc:                "NilTypeDesc",
	ParenTypeDesc:              "ParenTypeDesc",
	TupleTypeDesc:              "TupleTypeDesc",
	TupleRestDesc:              "TupleRestDesc",
	ObjectTypeDesc:             "ObjectTypeDesc",
	RecordTypeDesc:             "RecordTypeDesc",
	ClosedRecordTypeDesc:       "ClosedRecordTypeDesc",
	ErrorTypeDesc:              "ErrorTypeDesc",
	FunctionTypeDesc:           "FunctionTypeDesc",
	MapTypeDesc:                "MapTypeDesc",
	FutureTypeDesc:             "FutureTypeDesc",
	TypedescTypeDesc:           "TypedescTypeDesc",
	StreamTypeDesc:             "StreamTypeDesc",
	TableTypeDesc:              "TableTypeDesc",
	XmlTypeDesc:                "XmlTypeDesc",
	ArrayTypeDesc:              "ArrayTypeDesc",
	UnionTypeDesc:              "UnionTypeDesc",
	NullableTypeDesc:           "NullableTypeDesc",
	IntLiteral:                 "IntLiteral",
	FloatLiteral:               "FloatLiteral",
	StringLiteral:              "StringLiteral",
	BooleanLiteral:             "BooleanLiteral",
	NullLiteral:                "NullLiteral",
	NilLiteral:                 "NilLiteral",
	BlobLiteral:                "BlobLiteral",
	NameRef:                    "NameRef",
	FieldAccessExpr:            "FieldAccessExpr",
	IndexAccessExpr:            "IndexAccessExpr",
	XMLAttribAccessExpr:        "XMLAttribAccessExpr",
	MethodCallExpr:             "MethodCallExpr",
	FunctionCallExpr:           "FunctionCallExpr",
	ActionInvocationExpr:       "ActionInvocationExpr",
	ArgList:                    "ArgList",
	NamedArg:                   "NamedArg",
	RestArg:                    "RestArg",
	ListConstructorExpr:        "ListConstructorExpr",
	RecordLiteral:              "RecordLiteral",
	RecordKeyValue:             "RecordKeyValue",
	ComputedKey:                "ComputedKey",
	TableLiteral:               "TableLiteral",
	TableColumns:               "TableColumns",
	TableColumn:                "TableColumn",
	TableDataArray:             "TableDataArray",
	TableData:                  "TableData",
	StartExpr:                  "StartExpr",
	LambdaFunction:             "LambdaFunction",
	ArrowFunction:              "ArrowFunction",
	ArrowParams:                "ArrowParams",
	NewExpr:                    "NewExpr",
	ErrorConstructorExpr:       "ErrorConstructorExpr",
	ServiceConstructorExpr:     "ServiceConstructorExpr",
	TrapExpr:                   "TrapExpr",
	CheckExpr:                  "CheckExpr",
	CheckPanicExpr:             "CheckPanicExpr",
	WaitExpr:                   "WaitExpr",
	WaitForAllExpr:             "WaitForAllExpr",
	WaitKeyValue:               "WaitKeyValue",
	WorkerReceiveExpr:          "WorkerReceiveExpr",
	FlushExpr:                  "FlushExpr",
	TypeConversionExpr:         "TypeConversionExpr",
	UnaryExpr:                  "UnaryExpr",
	GroupExpr:                  "GroupExpr",
	TupleExpr:                  "TupleExpr",
	TypeDescExpr:               "TypeDescExpr",
	BinaryMulExpr:              "BinaryMulExpr",
	BinaryAddExpr:              "BinaryAddExpr",
	ShiftExpr:                  "ShiftExpr",
	RangeExpr:                  "RangeExpr",
	CompareExpr:                "CompareExpr",
	TypeTestExpr:               "TypeTestExpr",
	EqualityExpr:               "EqualityExpr",
	RefEqualityExpr:            "RefEqualityExpr",
	BitwiseExpr:                "BitwiseExpr",
	LogicalAndExpr:             "LogicalAndExpr",
	LogicalOrExpr:              "LogicalOrExpr",
	ElvisExpr:                  "ElvisExpr",
	TernaryExpr:                "TernaryExpr",
	SyncSendExpr:               "SyncSendExpr",
	StringTemplate:             "StringTemplate",
	TemplateInterp:             "TemplateInterp",
	XMLLiteral:                 "XMLLiteral",
	XMLElement:                 "XMLElement",
	XMLStartTag:                "XMLStartTag",
	XMLEndTag:                  "XMLEndTag",
	XMLEmptyTag:                "XMLEmptyTag",
	XMLAttribute:               "XMLAttribute",
	XMLQuotedString:            "XMLQuotedString",
	XMLQualifiedName:           "XMLQualifiedName",
	XMLText:                    "XMLText",
	XMLComment:                 "XMLComment",
	XMLProcIns:                 "XMLProcIns",
	Block:                      "Block",
	VarDef:                     "VarDef",
	AssignmentStmt:             "AssignmentStmt",
	CompoundAssignmentStmt:     "CompoundAssignmentStmt",
	TupleDestructureStmt:       "TupleDestructureStmt",
	RecordDestructureStmt:      "RecordDestructureStmt",
	ErrorDestructureStmt:       "ErrorDestructureStmt",
	IfElseStmt:                 "IfElseStmt",
	IfClause:                   "IfClause",
	ElseIfClause:               "ElseIfClause",
	ElseClause:                 "ElseClause",
	MatchStmt:                  "MatchStmt",
	MatchClause:                "MatchClause",
	StaticMatchPattern:         "StaticMatchPattern",
	VarMatchPattern:            "VarMatchPattern",
	ForeachStmt:                "ForeachStmt",
	WhileStmt:                  "WhileStmt",
	ContinueStmt:               "ContinueStmt",
	BreakStmt:                  "BreakStmt",
	ForkJoinStmt:               "ForkJoinStmt",
	TryCatchStmt:               "TryCatchStmt",
	CatchClause:                "CatchClause",
	FinallyClause:              "FinallyClause",
	ThrowStmt:                  "ThrowStmt",
	PanicStmt:                  "PanicStmt",
	ReturnStmt:                 "ReturnStmt",
	WorkerSendStmt:             "WorkerSendStmt",
	ExprStmt:                   "ExprStmt",
	TransactionStmt:            "TransactionStmt",
	TransactionProps:           "TransactionProps",
	OnRetryClause:              "OnRetryClause",
	CommittedClause:            "CommittedClause",
	AbortedClause:              "AbortedClause",
	AbortStmt:                  "AbortStmt",
	RetryStmt:                  "RetryStmt",
	LockStmt:                   "LockStmt",
	ForeverStmt:                "ForeverStmt",
	StreamingQueryStmt:         "StreamingQueryStmt",
	CaptureBindingPattern:      "CaptureBindingPattern",
	TupleBindingPattern:        "TupleBindingPattern",
	RecordBindingPattern:       "RecordBindingPattern",
	ClosedRecordBindingPattern: "ClosedRecordBindingPattern",
	FieldBindingPattern:        "FieldBindingPattern",
	RestBindingPattern:         "RestBindingPattern",
	ErrorBindingPattern:        "ErrorBindingPattern",
	TupleRefPattern:            "TupleRefPattern",
	RecordRefPattern:           "RecordRefPattern",
	ClosedRecordRefPattern:     "ClosedRecordRefPattern",
	FieldRefPattern:            "FieldRefPattern",
	RestRefPattern:             "RestRefPattern",
	ErrorRefPattern:            "ErrorRefPattern",
	TableQueryExpr:             "TableQueryExpr",
	StreamingInput:             "StreamingInput",
	WhereClause:                "WhereClause",
	StreamInvocation:           "StreamInvocation",
	WindowClause:               "WindowClause",
	AliasClause:                "AliasClause",
	JoinStreamingInput:         "JoinStreamingInput",
	JoinType:                   "JoinType",
	OnClause:                   "OnClause",
	PatternClause:              "PatternClause",
	PatternStreamingInput:      "PatternStreamingInput",
	PatternEdge:                "PatternEdge",
	IntRange:                   "IntRange",
	WithinClause:               "WithinClause",
	SelectClause:               "SelectClause",
	SelectExpr:                 "SelectExpr",
	GroupByClause:              "GroupByClause",
	HavingClause:               "HavingClause",
	OrderByClause:              "OrderByClause",
	OrderByVariable:            "OrderByVariable",
	LimitClause:                "LimitClause",
	OutputRateLimit:            "OutputRateLimit",
	StreamingAction:            "StreamingAction",
	DocString:                  "DocString",
	DocLine:                    "DocLine",
	ParamDocLine:               "ParamDocLine",
	ReturnDocLine:              "ReturnDocLine",
	DocTypedRef:                "DocTypedRef",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// KindCount returns the number of defined node kinds.
func KindCount() int { return int(kindCount) }
