package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002

	// Syntactic.
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectType       Code = 2003
	SynExpectSemicolon  Code = 2004
	SynExpectItem       Code = 2005
	SynEmptyImportList  Code = 2006
	SynDuplicateItem    Code = 2007

	// Type checking.
	TypeInfo                   Code = 3000
	TypeDuplicateVariable      Code = 3001
	TypeFunctionNoReturn       Code = 3002
	TypeDuplicateCircuitMember Code = 3003
	TypeDuplicateRecordVar     Code = 3004
	TypeRequiredRecordVar      Code = 3005
	TypeRecordVarWrongType     Code = 3006
	TypeUnknownType            Code = 3007
)

var codeNames = map[Code]string{
	UnknownCode:                "UNKNOWN",
	LexInfo:                    "LEX_INFO",
	LexUnknownChar:             "LEX_UNKNOWN_CHAR",
	LexUnterminatedString:      "LEX_UNTERMINATED_STRING",
	SynInfo:                    "SYN_INFO",
	SynUnexpectedToken:         "SYN_UNEXPECTED_TOKEN",
	SynExpectIdentifier:        "SYN_EXPECT_IDENTIFIER",
	SynExpectType:              "SYN_EXPECT_TYPE",
	SynExpectSemicolon:         "SYN_EXPECT_SEMICOLON",
	SynExpectItem:              "SYN_EXPECT_ITEM",
	SynEmptyImportList:         "SYN_EMPTY_IMPORT_LIST",
	SynDuplicateItem:           "SYN_DUPLICATE_ITEM",
	TypeInfo:                   "TYPE_INFO",
	TypeDuplicateVariable:      "TYPE_DUPLICATE_VARIABLE",
	TypeFunctionNoReturn:       "TYPE_FUNCTION_NO_RETURN",
	TypeDuplicateCircuitMember: "TYPE_DUPLICATE_CIRCUIT_MEMBER",
	TypeDuplicateRecordVar:     "TYPE_DUPLICATE_RECORD_VARIABLE",
	TypeRequiredRecordVar:      "TYPE_REQUIRED_RECORD_VARIABLE",
	TypeRecordVarWrongType:     "TYPE_RECORD_VARIABLE_WRONG_TYPE",
	TypeUnknownType:            "TYPE_UNKNOWN_TYPE",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CODE_%04d", uint16(c))
}
