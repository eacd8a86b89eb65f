package token

import "strconv"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks bytes the producer could not classify.
	Invalid Kind = iota
	// EOF terminates every stream and carries trailing trivia.
	EOF

	// literals
	// Ident is a plain or quoted (^"...") identifier.
	Ident
	// IntLit is a decimal, hex or binary integer.
	IntLit
	FloatLit
	StringLit
	// BlobLit is a base16 or base64 byte literal.
	BlobLit

	// reserved words
	KwImport     // import
	KwAs         // as
	KwPublic     // public
	KwPrivate    // private
	KwExternal   // external
	KwFinal      // final
	KwService    // service
	KwResource   // resource
	KwFunction   // function
	KwObject     // object
	KwRecord     // record
	KwAnnotation // annotation
	KwParameter  // parameter
	KwWorker     // worker
	KwListener   // listener
	KwRemote     // remote
	KwXmlns      // xmlns
	KwReturns    // returns
	KwVersion    // version
	KwAbstract   // abstract
	KwClient     // client
	KwConst      // const
	KwOn         // on

	// built-in type names
	KwInt      // int
	KwByte     // byte
	KwFloat    // float
	KwDecimal  // decimal
	KwBoolean  // boolean
	KwString   // string
	KwError    // error
	KwMap      // map
	KwJson     // json
	KwXml      // xml
	KwTable    // table
	KwStream   // stream
	KwAny      // any
	KwTypedesc // typedesc
	KwType     // type
	KwFuture   // future
	KwAnydata  // anydata
	KwHandle   // handle
	KwNever    // never

	// statements and expressions
	KwVar         // var
	KwNew         // new
	KwIf          // if
	KwMatch       // match
	KwElse        // else
	KwForeach     // foreach
	KwWhile       // while
	KwContinue    // continue
	KwBreak       // break
	KwFork        // fork
	KwJoin        // join
	KwTry         // try
	KwCatch       // catch
	KwFinally     // finally
	KwThrow       // throw
	KwPanic       // panic
	KwTrap        // trap
	KwReturn      // return
	KwTransaction // transaction
	KwAbort       // abort
	KwRetry       // retry
	KwOnretry     // onretry
	KwRetries     // retries
	KwCommitted   // committed
	KwAborted     // aborted
	KwWith        // with
	KwIn          // in
	KwLock        // lock
	KwUntaint     // untaint
	KwStart       // start
	KwCheck       // check
	KwCheckpanic  // checkpanic
	KwIs          // is
	KwFlush       // flush
	KwWait        // wait
	KwFrom        // from
	KwForever     // forever
	KwTrue        // true
	KwFalse       // false
	KwNull        // null

	// contextual streaming-query words
	CtxSelect         // select
	CtxGroup          // group
	CtxBy             // by
	CtxHaving         // having
	CtxOrder          // order
	CtxWhere          // where
	CtxFollowed       // followed
	CtxWindow         // window
	CtxEvents         // events
	CtxEvery          // every
	CtxWithin         // within
	CtxLast           // last
	CtxFirst          // first
	CtxAll            // all
	CtxSnapshot       // snapshot
	CtxOutput         // output
	CtxInner          // inner
	CtxOuter          // outer
	CtxRight          // right
	CtxLeft           // left
	CtxFull           // full
	CtxUnidirectional // unidirectional
	CtxLimit          // limit
	CtxAscending      // ascending
	CtxDescending     // descending
	CtxNot            // not
	CtxAnd            // and
	CtxOr             // or
	CtxFor            // for
	CtxKey            // key
	// CtxTimeScale is any of second(s), minute(s), hour(s), day(s), month(s),
	// year(s), millisecond(s).
	CtxTimeScale

	// operators and punctuation
	Semicolon     // ;
	Colon         // :
	Dot           // .
	Comma         // ,
	LBrace        // {
	RBrace        // }
	LParen        // (
	RParen        // )
	LBracket      // [
	RBracket      // ]
	Question      // ?
	QuestionDot   // ?.
	LClosedBrace  // {|
	RClosedBrace  // |}
	Assign        // =
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Bang          // !
	EqEq          // ==
	BangEq        // !=
	Gt            // >
	Lt            // <
	GtEq          // >=
	LtEq          // <=
	AndAnd        // &&
	OrOr          // ||
	EqEqEq        // ===
	BangEqEq      // !==
	Amp           // &
	Pipe          // |
	Caret         // ^
	Tilde         // ~
	Arrow         // ->
	LArrow        // <-
	SyncArrow     // ->>
	FatArrow      // =>
	Elvis         // ?:
	At            // @
	DotDot        // ..
	Ellipsis      // ...
	HalfOpenRange // ..<
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	ShlAssign     // <<=
	ShrAssign     // >>=
	UShrAssign    // >>>=

	// string templates
	// TemplateStart opens a string template.
	TemplateStart // string `
	TemplateText
	TemplateEnd // `
	// InterpStart opens an expression island in a template or XML literal.
	InterpStart // ${
	InterpEnd   // }

	// XML literal content
	XMLStart // xml `
	XMLEnd   // `
	XMLText
	XMLTagOpen       // <
	XMLTagOpenSlash  // </
	XMLTagClose      // >
	XMLTagSlashClose // />
	// XMLName is one segment of a possibly prefixed XML name.
	XMLName
	XMLColon       // :
	XMLEquals      // =
	XMLSQuoteStart // '
	XMLSQuoteEnd   // '
	XMLDQuoteStart // "
	XMLDQuoteEnd   // "
	XMLQuotedText
	XMLCommentStart // <!--
	XMLCommentText
	XMLCommentEnd // -->
	XMLPIStart    // <?
	XMLPIText
	XMLPIEnd // ?>
	// XMLCDATA is a whole <![CDATA[...]]> section.
	XMLCDATA

	// documentation lines
	// DocHash starts a documentation line.
	DocHash  // #
	DocPlus  // +
	DocMinus // -
	// DocParam names the documented parameter after '+'.
	DocParam
	DocReturn // return
	DocText
	// DocRefKind is the word before a typed reference, e.g. type in type `T`.
	DocRefKind
	// DocCode1..3 are backtick spans delimited by one, two or three backticks.
	DocCode1
	DocCode2
	DocCode3

	kindCount
)

var kindNames = [...]string{
	Invalid:           "Invalid",
	EOF:               "EOF",
	Ident:             "Ident",
	IntLit:            "IntLit",
	FloatLit:          "FloatLit",
	StringLit:         "StringLit",
	BlobLit:           "BlobLit",
	KwImport:          "import",
	KwAs:              "as",
	KwPublic:          "public",
	KwPrivate:         "private",
	KwExternal:        "external",
	KwFinal:           "final",
	KwService:         "service",
	KwResource:        "resource",
	KwFunction:        "function",
	KwObject:          "object",
	KwRecord:          "record",
	KwAnnotation:      "annotation",
	KwParameter:       "parameter",
	KwWorker:          "worker",
	KwListener:        "listener",
	KwRemote:          "remote",
	KwXmlns:           "xmlns",
	KwReturns:         "returns",
	KwVersion:         "version",
	KwAbstract:        "abstract",
	KwClient:          "client",
	KwConst:           "const",
	KwOn:              "on",
	KwInt:             "int",
	KwByte:            "byte",
	KwFloat:           "float",
	KwDecimal:         "decimal",
	KwBoolean:         "boolean",
	KwString:          "string",
	KwError:           "error",
	KwMap:             "map",
	KwJson:            "json",
	KwXml:             "xml",
	KwTable:           "table",
	KwStream:          "stream",
	KwAny:             "any",
	KwTypedesc:        "typedesc",
	KwType:            "type",
	KwFuture:          "future",
	KwAnydata:         "anydata",
	KwHandle:          "handle",
	KwNever:           "never",
	KwVar:             "var",
	KwNew:             "new",
	KwIf:              "if",
	KwMatch:           "match",
	KwElse:            "else",
	KwForeach:         "foreach",
	KwWhile:           "while",
	KwContinue:        "continue",
	KwBreak:           "break",
	KwFork:            "fork",
	KwJoin:            "join",
	KwTry:             "try",
	KwCatch:           "catch",
	KwFinally:         "finally",
	KwThrow:           "throw",
	KwPanic:           "panic",
	KwTrap:            "trap",
	KwReturn:          "return",
	KwTransaction:     "transaction",
	KwAbort:           "abort",
	KwRetry:           "retry",
	KwOnretry:         "onretry",
	KwRetries:         "retries",
	KwCommitted:       "committed",
	KwAborted:         "aborted",
	KwWith:            "with",
	KwIn:              "in",
	KwLock:            "lock",
	KwUntaint:         "untaint",
	KwStart:           "start",
	KwCheck:           "check",
	KwCheckpanic:      "checkpanic",
	KwIs:              "is",
	KwFlush:           "flush",
	KwWait:            "wait",
	KwFrom:            "from",
	KwForever:         "forever",
	KwTrue:            "true",
	KwFalse:           "false",
	KwNull:            "null",
	CtxSelect:         "select",
	CtxGroup:          "group",
	CtxBy:             "by",
	CtxHaving:         "having",
	CtxOrder:          "order",
	CtxWhere:          "where",
	CtxFollowed:       "followed",
	CtxWindow:         "window",
	CtxEvents:         "events",
	CtxEvery:          "every",
	CtxWithin:         "within",
	CtxLast:           "last",
	CtxFirst:          "first",
	CtxAll:            "all",
	CtxSnapshot:       "snapshot",
	CtxOutput:         "output",
	CtxInner:          "inner",
	CtxOuter:          "outer",
	CtxRight:          "right",
	CtxLeft:           "left",
	CtxFull:           "full",
	CtxUnidirectional: "unidirectional",
	CtxLimit:          "limit",
	CtxAscending:      "ascending",
	CtxDescending:     "descending",
	CtxNot:            "not",
	CtxAnd:            "and",
	CtxOr:             "or",
	CtxFor:            "for",
	CtxKey:            "key",
	CtxTimeScale:      "timescale",
	Semicolon:         ";",
	Colon:             ":",
	Dot:               ".",
	Comma:             ",",
	LBrace:            "{",
	RBrace:            "}",
	LParen:            "(",
	RParen:            ")",
	LBracket:          "[",
	RBracket:          "]",
	Question:          "?",
	QuestionDot:       "?.",
	LClosedBrace:      "{|",
	RClosedBrace:      "|}",
	Assign:            "=",
	Plus:              "+",
	Minus:             "-",
	Star:              "*",
	Slash:             "/",
	Percent:           "%",
	Bang:              "!",
	EqEq:              "==",
	BangEq:            "!=",
	Gt:                ">",
	Lt:                "<",
	GtEq:              ">=",
	LtEq:              "<=",
	AndAnd:            "&&",
	OrOr:              "||",
	EqEqEq:            "===",
	BangEqEq:          "!==",
	Amp:               "&",
	Pipe:              "|",
	Caret:             "^",
	Tilde:             "~",
	Arrow:             "->",
	LArrow:            "<-",
	SyncArrow:         "->>",
	FatArrow:          "=>",
	Elvis:             "?:",
	At:                "@",
	DotDot:            "..",
	Ellipsis:          "...",
	HalfOpenRange:     "..<",
	PlusAssign:        "+=",
	MinusAssign:       "-=",
	StarAssign:        "*=",
	SlashAssign:       "/=",
	AmpAssign:         "&=",
	PipeAssign:        "|=",
	CaretAssign:       "^=",
	ShlAssign:         "<<=",
	ShrAssign:         ">>=",
	UShrAssign:        ">>>=",
	TemplateStart:     "string `",
	TemplateText:      "TemplateText",
	TemplateEnd:       "`",
	InterpStart:       "${",
	InterpEnd:         "}",
	XMLStart:          "xml `",
	XMLEnd:            "`",
	XMLText:           "XMLText",
	XMLTagOpen:        "<",
	XMLTagOpenSlash:   "</",
	XMLTagClose:       ">",
	XMLTagSlashClose:  "/>",
	XMLName:           "XMLName",
	XMLColon:          ":",
	XMLEquals:         "=",
	XMLSQuoteStart:    "'",
	XMLSQuoteEnd:      "'",
	XMLDQuoteStart:    "\"",
	XMLDQuoteEnd:      "\"",
	XMLQuotedText:     "XMLQuotedText",
	XMLCommentStart:   "<!--",
	XMLCommentText:    "XMLCommentText",
	XMLCommentEnd:     "-->",
	XMLPIStart:        "<?",
	XMLPIText:         "XMLPIText",
	XMLPIEnd:          "?>",
	XMLCDATA:          "XMLCDATA",
	DocHash:           "#",
	DocPlus:           "+",
	DocMinus:          "-",
	DocParam:          "DocParam",
	DocReturn:         "return",
	DocText:           "DocText",
	DocRefKind:        "DocRefKind",
	DocCode1:          "DocCode1",
	DocCode2:          "DocCode2",
	DocCode3:          "DocCode3",
}

// String returns the fixed spelling of punctuation and keywords, or the
// kind name for tokens with variable text.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Count returns the number of defined kinds.
func Count() int { return int(kindCount) }
