package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                    Code = 1000
	LexUnknownChar             Code = 1001
	LexUnterminatedString      Code = 1002
	LexUnterminatedTemplate    Code = 1003
	LexBadNumber               Code = 1004
	LexUnterminatedXML         Code = 1005
	LexBadBlob                 Code = 1006
	LexNonNormalIdent          Code = 1007
	LexUnterminatedQuotedIdent Code = 1008

	// syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynMissingToken       Code = 2002
	SynNoViableAlt        Code = 2003
	SynPredicateFailed    Code = 2004
	SynUnterminated       Code = 2005
	SynExpectType         Code = 2010
	SynExpectExpression   Code = 2011
	SynExpectStatement    Code = 2012
	SynExpectBinding      Code = 2013
	SynExpectDefinition   Code = 2014
	SynExpectIdentifier   Code = 2015
	SynExpectQueryClause  Code = 2016
	SynExpectXMLItem      Code = 2017
	SynExpectDocLine      Code = 2018
	SynAdjacentShift      Code = 2019
	SynIntRangeForm       Code = 2020
	SynDanglingAnnotation Code = 2021

	// io
	IOLoadFileError Code = 4001
	IOReadDirError  Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                "Unknown error",
	LexInfo:                    "Lexical information",
	LexUnknownChar:             "Unknown character",
	LexUnterminatedString:      "Unterminated string literal",
	LexUnterminatedTemplate:    "Unterminated string template",
	LexBadNumber:               "Malformed numeric literal",
	LexUnterminatedXML:         "Unterminated XML literal",
	LexBadBlob:                 "Malformed byte-array literal",
	LexNonNormalIdent:          "Identifier is not in NFC normal form",
	LexUnterminatedQuotedIdent: "Unterminated quoted identifier",
	SynInfo:                    "Syntax information",
	SynUnexpectedToken:         "Unexpected token",
	SynMissingToken:            "Missing token",
	SynNoViableAlt:             "No viable alternative",
	SynPredicateFailed:         "Semantic predicate failed",
	SynUnterminated:            "Unterminated construct",
	SynExpectType:              "Expected type descriptor",
	SynExpectExpression:        "Expected expression",
	SynExpectStatement:         "Expected statement",
	SynExpectBinding:           "Expected binding pattern",
	SynExpectDefinition:        "Expected top-level definition",
	SynExpectIdentifier:        "Expected identifier",
	SynExpectQueryClause:       "Expected streaming-query clause",
	SynExpectXMLItem:           "Expected XML item",
	SynExpectDocLine:           "Expected documentation line",
	SynAdjacentShift:           "Shift operator tokens must be adjacent",
	SynIntRangeForm:            "Malformed integer range",
	SynDanglingAnnotation:      "Annotation is not followed by a definition",
	IOLoadFileError:            "Failed to load file",
	IOReadDirError:             "Failed to read directory",
}

// DefaultKind returns the taxonomy bucket a code falls into when the
// reporter does not set one explicitly.
func (c Code) DefaultKind() Kind {
	switch {
	case c >= 1000 && c < 2000:
		return KindLexical
	case c == SynMissingToken:
		return KindMissingToken
	case c == SynNoViableAlt, c >= SynExpectType && c <= SynExpectDocLine:
		return KindNoViableAlternative
	case c == SynPredicateFailed, c == SynAdjacentShift, c == SynIntRangeForm,
		c == SynDanglingAnnotation:
		return KindSemanticPredicateFailed
	case c == SynUnterminated:
		return KindUnterminatedUnit
	}
	return KindUnexpectedToken
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
