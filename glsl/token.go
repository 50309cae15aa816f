// Package glsl provides GLSL (OpenGL Shading Language) parsing.
package glsl

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenUIntLiteral
	TokenFloatLiteral
	TokenDoubleLiteral
	TokenBoolLiteral

	// A whole "#..." line, lexeme excludes the leading '#'.
	TokenDirective

	// Operators
	TokenPlus                // +
	TokenMinus               // -
	TokenStar                // *
	TokenSlash               // /
	TokenPercent             // %
	TokenAmpersand           // &
	TokenPipe                // |
	TokenCaret               // ^
	TokenTilde               // ~
	TokenBang                // !
	TokenEqual               // =
	TokenLess                // <
	TokenGreater             // >
	TokenDot                 // .
	TokenComma               // ,
	TokenColon               // :
	TokenSemicolon           // ;
	TokenQuestion            // ?
	TokenPlusPlus            // ++
	TokenMinusMinus          // --
	TokenEqualEqual          // ==
	TokenBangEqual           // !=
	TokenLessEqual           // <=
	TokenGreaterEqual        // >=
	TokenAmpAmp              // &&
	TokenPipePipe            // ||
	TokenCaretCaret          // ^^
	TokenLessLess            // <<
	TokenGreaterGreater      // >>
	TokenPlusEqual           // +=
	TokenMinusEqual          // -=
	TokenStarEqual           // *=
	TokenSlashEqual          // /=
	TokenPercentEqual        // %=
	TokenAmpEqual            // &=
	TokenPipeEqual           // |=
	TokenCaretEqual          // ^=
	TokenLessLessEqual       // <<=
	TokenGreaterGreaterEqual // >>=

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]

	// Keywords
	TokenBreak
	TokenCase
	TokenConst
	TokenContinue
	TokenDefault
	TokenDiscard
	TokenDo
	TokenElse
	TokenFor
	TokenIf
	TokenPrecision
	TokenReturn
	TokenStruct
	TokenSwitch
	TokenWhile

	// Qualifier keywords
	TokenIn
	TokenOut
	TokenInOut
	TokenUniform
	TokenBuffer
	TokenShared
	TokenCoherent
	TokenVolatile
	TokenRestrict
	TokenReadOnly
	TokenWriteOnly
	TokenCentroid
	TokenPatch
	TokenSample
	TokenSubroutine
	TokenLayout
	TokenInvariant
	TokenPrecise
	TokenHighP
	TokenMediumP
	TokenLowP
	TokenSmooth
	TokenFlat
	TokenNoPerspective
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "Error"
	case TokenIdent:
		return "Ident"
	case TokenIntLiteral:
		return "IntLiteral"
	case TokenUIntLiteral:
		return "UIntLiteral"
	case TokenFloatLiteral:
		return "FloatLiteral"
	case TokenDoubleLiteral:
		return "DoubleLiteral"
	case TokenBoolLiteral:
		return "BoolLiteral"
	case TokenDirective:
		return "Directive"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenPercent:
		return "%"
	case TokenAmpersand:
		return "&"
	case TokenPipe:
		return "|"
	case TokenCaret:
		return "^"
	case TokenTilde:
		return "~"
	case TokenBang:
		return "!"
	case TokenEqual:
		return "="
	case TokenLess:
		return "<"
	case TokenGreater:
		return ">"
	case TokenDot:
		return "."
	case TokenComma:
		return ","
	case TokenColon:
		return ":"
	case TokenSemicolon:
		return ";"
	case TokenQuestion:
		return "?"
	case TokenPlusPlus:
		return "++"
	case TokenMinusMinus:
		return "--"
	case TokenEqualEqual:
		return "=="
	case TokenBangEqual:
		return "!="
	case TokenLessEqual:
		return "<="
	case TokenGreaterEqual:
		return ">="
	case TokenAmpAmp:
		return "&&"
	case TokenPipePipe:
		return "||"
	case TokenCaretCaret:
		return "^^"
	case TokenLessLess:
		return "<<"
	case TokenGreaterGreater:
		return ">>"
	case TokenPlusEqual:
		return "+="
	case TokenMinusEqual:
		return "-="
	case TokenStarEqual:
		return "*="
	case TokenSlashEqual:
		return "/="
	case TokenPercentEqual:
		return "%="
	case TokenAmpEqual:
		return "&="
	case TokenPipeEqual:
		return "|="
	case TokenCaretEqual:
		return "^="
	case TokenLessLessEqual:
		return "<<="
	case TokenGreaterGreaterEqual:
		return ">>="
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenLeftBracket:
		return "["
	case TokenRightBracket:
		return "]"
	case TokenBreak:
		return "break"
	case TokenCase:
		return "case"
	case TokenConst:
		return "const"
	case TokenContinue:
		return "continue"
	case TokenDefault:
		return "default"
	case TokenDiscard:
		return "discard"
	case TokenDo:
		return "do"
	case TokenElse:
		return "else"
	case TokenFor:
		return "for"
	case TokenIf:
		return "if"
	case TokenPrecision:
		return "precision"
	case TokenReturn:
		return "return"
	case TokenStruct:
		return "struct"
	case TokenSwitch:
		return "switch"
	case TokenWhile:
		return "while"
	case TokenIn:
		return "in"
	case TokenOut:
		return "out"
	case TokenInOut:
		return "inout"
	case TokenUniform:
		return "uniform"
	case TokenBuffer:
		return "buffer"
	case TokenShared:
		return "shared"
	case TokenCoherent:
		return "coherent"
	case TokenVolatile:
		return "volatile"
	case TokenRestrict:
		return "restrict"
	case TokenReadOnly:
		return "readonly"
	case TokenWriteOnly:
		return "writeonly"
	case TokenCentroid:
		return "centroid"
	case TokenPatch:
		return "patch"
	case TokenSample:
		return "sample"
	case TokenSubroutine:
		return "subroutine"
	case TokenLayout:
		return "layout"
	case TokenInvariant:
		return "invariant"
	case TokenPrecise:
		return "precise"
	case TokenHighP:
		return "highp"
	case TokenMediumP:
		return "mediump"
	case TokenLowP:
		return "lowp"
	case TokenSmooth:
		return "smooth"
	case TokenFlat:
		return "flat"
	case TokenNoPerspective:
		return "noperspective"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

// keywords maps structural and qualifier keywords to their token kinds.
// Type names are not lexed as keywords; the parser resolves identifiers
// against the type catalog (see keywords.go).
var keywords = map[string]TokenKind{
	"break":     TokenBreak,
	"case":      TokenCase,
	"const":     TokenConst,
	"continue":  TokenContinue,
	"default":   TokenDefault,
	"discard":   TokenDiscard,
	"do":        TokenDo,
	"else":      TokenElse,
	"for":       TokenFor,
	"if":        TokenIf,
	"precision": TokenPrecision,
	"return":    TokenReturn,
	"struct":    TokenStruct,
	"switch":    TokenSwitch,
	"while":     TokenWhile,

	// Qualifiers
	"in":            TokenIn,
	"out":           TokenOut,
	"inout":         TokenInOut,
	"uniform":       TokenUniform,
	"buffer":        TokenBuffer,
	"shared":        TokenShared,
	"coherent":      TokenCoherent,
	"volatile":      TokenVolatile,
	"restrict":      TokenRestrict,
	"readonly":      TokenReadOnly,
	"writeonly":     TokenWriteOnly,
	"centroid":      TokenCentroid,
	"patch":         TokenPatch,
	"sample":        TokenSample,
	"subroutine":    TokenSubroutine,
	"layout":        TokenLayout,
	"invariant":     TokenInvariant,
	"precise":       TokenPrecise,
	"highp":         TokenHighP,
	"mediump":       TokenMediumP,
	"lowp":          TokenLowP,
	"smooth":        TokenSmooth,
	"flat":          TokenFlat,
	"noperspective": TokenNoPerspective,
}
