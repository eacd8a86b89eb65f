package token

var keywords = map[string]Kind{
	"import":      KwImport,
	"as":          KwAs,
	"public":      KwPublic,
	"private":     KwPrivate,
	"external":    KwExternal,
	"final":       KwFinal,
	"service":     KwService,
	"resource":    KwResource,
	"function":    KwFunction,
	"object":      KwObject,
	"record":      KwRecord,
	"annotation":  KwAnnotation,
	"parameter":   KwParameter,
	"worker":      KwWorker,
	"listener":    KwListener,
	"remote":      KwRemote,
	"xmlns":       KwXmlns,
	"returns":     KwReturns,
	"version":     KwVersion,
	"abstract":    KwAbstract,
	"client":      KwClient,
	"const":       KwConst,
	"on":          KwOn,
	"int":         KwInt,
	"byte":        KwByte,
	"float":       KwFloat,
	"decimal":     KwDecimal,
	"boolean":     KwBoolean,
	"string":      KwString,
	"error":       KwError,
	"map":         KwMap,
	"json":        KwJson,
	"xml":         KwXml,
	"table":       KwTable,
	"stream":      KwStream,
	"any":         KwAny,
	"typedesc":    KwTypedesc,
	"type":        KwType,
	"future":      KwFuture,
	"anydata":     KwAnydata,
	"handle":      KwHandle,
	"never":       KwNever,
	"var":         KwVar,
	"new":         KwNew,
	"if":          KwIf,
	"match":       KwMatch,
	"else":        KwElse,
	"foreach":     KwForeach,
	"while":       KwWhile,
	"continue":    KwContinue,
	"break":       KwBreak,
	"fork":        KwFork,
	"join":        KwJoin,
	"try":         KwTry,
	"catch":       KwCatch,
	"finally":     KwFinally,
	"throw":       KwThrow,
	"panic":       KwPanic,
	"trap":        KwTrap,
	"return":      KwReturn,
	"transaction": KwTransaction,
	"abort":       KwAbort,
	"retry":       KwRetry,
	"onretry":     KwOnretry,
	"retries":     KwRetries,
	"committed":   KwCommitted,
	"aborted":     KwAborted,
	"with":        KwWith,
	"in":          KwIn,
	"lock":        KwLock,
	"untaint":     KwUntaint,
	"start":       KwStart,
	"check":       KwCheck,
	"checkpanic":  KwCheckpanic,
	"is":          KwIs,
	"flush":       KwFlush,
	"wait":        KwWait,
	"from":        KwFrom,
	"forever":     KwForever,
	"true":        KwTrue,
	"false":       KwFalse,
	"null":        KwNull,
}

var contextual = map[string]Kind{
	"select":         CtxSelect,
	"group":          CtxGroup,
	"by":             CtxBy,
	"having":         CtxHaving,
	"order":          CtxOrder,
	"where":          CtxWhere,
	"followed":       CtxFollowed,
	"window":         CtxWindow,
	"events":         CtxEvents,
	"every":          CtxEvery,
	"within":         CtxWithin,
	"last":           CtxLast,
	"first":          CtxFirst,
	"all":            CtxAll,
	"snapshot":       CtxSnapshot,
	"output":         CtxOutput,
	"inner":          CtxInner,
	"outer":          CtxOuter,
	"right":          CtxRight,
	"left":           CtxLeft,
	"full":           CtxFull,
	"unidirectional": CtxUnidirectional,
	"limit":          CtxLimit,
	"ascending":      CtxAscending,
	"descending":     CtxDescending,
	"not":            CtxNot,
	"and":            CtxAnd,
	"or":             CtxOr,
	"for":            CtxFor,
	"key":            CtxKey,
	"second":         CtxTimeScale,
	"seconds":        CtxTimeScale,
	"minute":         CtxTimeScale,
	"minutes":        CtxTimeScale,
	"hour":           CtxTimeScale,
	"hours":          CtxTimeScale,
	"day":            CtxTimeScale,
	"days":           CtxTimeScale,
	"month":          CtxTimeScale,
	"months":         CtxTimeScale,
	"year":           CtxTimeScale,
	"years":          CtxTimeScale,
	"millisecond":    CtxTimeScale,
	"milliseconds":   CtxTimeScale,
}

// LookupKeyword reports the reserved-word kind spelled by ident.
// Keywords are case sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupContextual reports the contextual query-word kind spelled by ident.
func LookupContextual(ident string) (Kind, bool) {
	k, ok := contextual[ident]
	return k, ok
}

// IsContextual reports whether k is one of the contextual query words.
func (k Kind) IsContextual() bool {
	return k >= CtxSelect && k <= CtxTimeScale
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwImport && k <= KwNull
}
