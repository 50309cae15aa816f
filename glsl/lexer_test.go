package glsl

import (
	"testing"
)

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"+ - * / %", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenEOF}},
		{"( ) { }", []TokenKind{TokenLeftParen, TokenRightParen, TokenLeftBrace, TokenRightBrace, TokenEOF}},
		{"[ ] , .", []TokenKind{TokenLeftBracket, TokenRightBracket, TokenComma, TokenDot, TokenEOF}},
		{": ; ? ~", []TokenKind{TokenColon, TokenSemicolon, TokenQuestion, TokenTilde, TokenEOF}},
	}

	for _, tt := range tests {
		lexer := NewLexer(tt.input)
		tokens, err := lexer.Tokenize()
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
			continue
		}

		if len(tokens) != len(tt.expected) {
			t.Errorf("Expected %d tokens, got %d", len(tt.expected), len(tokens))
			continue
		}

		for i, tok := range tokens {
			if tok.Kind != tt.expected[i] {
				t.Errorf("Token %d: expected %v, got %v", i, tt.expected[i], tok.Kind)
			}
		}
	}
}

func TestLexerOperators(t *testing.T) {
	input := "== != <= >= && || ^^ << >> ++ -- += -= *= /= %= &= |= ^= <<= >>="
	expected := []TokenKind{
		TokenEqualEqual, TokenBangEqual, TokenLessEqual, TokenGreaterEqual,
		TokenAmpAmp, TokenPipePipe, TokenCaretCaret, TokenLessLess, TokenGreaterGreater,
		TokenPlusPlus, TokenMinusMinus,
		TokenPlusEqual, TokenMinusEqual, TokenStarEqual, TokenSlashEqual, TokenPercentEqual,
		TokenAmpEqual, TokenPipeEqual, TokenCaretEqual, TokenLessLessEqual, TokenGreaterGreaterEqual,
		TokenEOF,
	}

	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v", i, expected[i], tok.Kind)
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	input := "break case const continue default discard do else for if precision return struct switch while"
	expected := []TokenKind{
		TokenBreak, TokenCase, TokenConst, TokenContinue, TokenDefault,
		TokenDiscard, TokenDo, TokenElse, TokenFor, TokenIf,
		TokenPrecision, TokenReturn, TokenStruct, TokenSwitch, TokenWhile,
		TokenEOF,
	}

	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v", i, expected[i], tok.Kind)
		}
	}
}

func TestLexerQualifierKeywords(t *testing.T) {
	input := "in out inout uniform buffer shared layout invariant precise highp mediump lowp smooth flat noperspective"
	expected := []TokenKind{
		TokenIn, TokenOut, TokenInOut, TokenUniform, TokenBuffer, TokenShared,
		TokenLayout, TokenInvariant, TokenPrecise,
		TokenHighP, TokenMediumP, TokenLowP,
		TokenSmooth, TokenFlat, TokenNoPerspective,
		TokenEOF,
	}

	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v", i, expected[i], tok.Kind)
		}
	}
}

func TestLexerTypeNamesAreIdentifiers(t *testing.T) {
	// Built-in type names are resolved by the parser, not the lexer.
	input := "void float vec3 mat4x3 sampler2D atomic_uint"
	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Kind != TokenIdent {
			t.Errorf("Token %q: expected Ident, got %v", tok.Lexeme, tok.Kind)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input  string
		kind   TokenKind
		lexeme string
	}{
		{"42", TokenIntLiteral, "42"},
		{"052", TokenIntLiteral, "052"},
		{"0x1F", TokenIntLiteral, "0x1F"},
		{"7u", TokenUIntLiteral, "7u"},
		{"7U", TokenUIntLiteral, "7U"},
		{"0xFFu", TokenUIntLiteral, "0xFFu"},
		{"1.5", TokenFloatLiteral, "1.5"},
		{"3.", TokenFloatLiteral, "3."},
		{".5", TokenFloatLiteral, ".5"},
		{"1.0f", TokenFloatLiteral, "1.0f"},
		{"2F", TokenFloatLiteral, "2F"},
		{"1e3", TokenFloatLiteral, "1e3"},
		{"2.5e-4", TokenFloatLiteral, "2.5e-4"},
		{"1.0lf", TokenDoubleLiteral, "1.0lf"},
		{"2.5LF", TokenDoubleLiteral, "2.5LF"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			tokens, err := lexer.Tokenize()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(tokens) != 2 {
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("Expected %v, got %v", tt.kind, tokens[0].Kind)
			}
			if tokens[0].Lexeme != tt.lexeme {
				t.Errorf("Expected lexeme %q, got %q", tt.lexeme, tokens[0].Lexeme)
			}
		})
	}
}

func TestLexerBoolLiterals(t *testing.T) {
	lexer := NewLexer("true false")
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	for _, tok := range tokens[:2] {
		if tok.Kind != TokenBoolLiteral {
			t.Errorf("Token %q: expected BoolLiteral, got %v", tok.Lexeme, tok.Kind)
		}
	}
}

func TestLexerDirective(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{"#version 330 core\n", "version 330 core"},
		{"# version 460\n", "version 460"},
		{"#extension GL_ARB_gpu_shader5 : enable\n", "extension GL_ARB_gpu_shader5 : enable"},
		{"#version 110", "version 110"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			tokens, err := lexer.Tokenize()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tokens[0].Kind != TokenDirective {
				t.Fatalf("Expected Directive, got %v", tokens[0].Kind)
			}
			if tokens[0].Lexeme != tt.lexeme {
				t.Errorf("Expected lexeme %q, got %q", tt.lexeme, tokens[0].Lexeme)
			}
		})
	}
}

func TestLexerDirectiveStopsAtNewline(t *testing.T) {
	lexer := NewLexer("#version 330\nvoid")
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenDirective {
		t.Errorf("Expected Directive, got %v", tokens[0].Kind)
	}
	if tokens[1].Kind != TokenIdent || tokens[1].Lexeme != "void" {
		t.Errorf("Expected Ident \"void\", got %v %q", tokens[1].Kind, tokens[1].Lexeme)
	}
}

func TestLexerComments(t *testing.T) {
	input := `// line comment
1 /* block
comment */ 2`
	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Lexeme != "1" || tokens[1].Lexeme != "2" {
		t.Errorf("Expected literals 1 and 2, got %q and %q", tokens[0].Lexeme, tokens[1].Lexeme)
	}
}

func TestLexerLineTracking(t *testing.T) {
	lexer := NewLexer("a\nb\nc")
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lines := []int{1, 2, 3}
	for i, want := range lines {
		if tokens[i].Line != want {
			t.Errorf("Token %d: expected line %d, got %d", i, want, tokens[i].Line)
		}
	}
}

func TestLexerColumnTracking(t *testing.T) {
	// "πval" is one identifier of four runes but five bytes; columns
	// count runes, so the following tokens must not drift.
	lexer := NewLexer("vec2 πval;")
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	columns := []int{1, 6, 10}
	if len(tokens) != len(columns)+1 {
		t.Fatalf("Expected %d tokens, got %d", len(columns)+1, len(tokens))
	}
	for i, want := range columns {
		if tokens[i].Column != want {
			t.Errorf("Token %q: expected column %d, got %d", tokens[i].Lexeme, want, tokens[i].Column)
		}
	}
}

func TestLexerDirectiveColumn(t *testing.T) {
	lexer := NewLexer("  #version 330\n")
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tokens[0].Kind != TokenDirective {
		t.Fatalf("Expected Directive, got %v", tokens[0].Kind)
	}
	if tokens[0].Column != 3 {
		t.Errorf("Expected column 3, got %d", tokens[0].Column)
	}
}

func TestLexerDotBeforeDigitIsFloat(t *testing.T) {
	lexer := NewLexer("v.xy .5")
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []TokenKind{TokenIdent, TokenDot, TokenIdent, TokenFloatLiteral, TokenEOF}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v", i, expected[i], tok.Kind)
		}
	}
}
