// Package glslquote quotes GLSL shaders as Go constructor expressions.
//
// glslquote parses GLSL (OpenGL Shading Language) source into a syntax tree
// and emits Go source that rebuilds the identical tree: parsing a shader at
// generation time instead of at run time, with the tree checked by the Go
// compiler like any other value.
//
// Two surfaces accept shader input:
//   - QuoteString takes the shader as one string. Preprocessor directives
//     (#version, #extension) are allowed because line structure survives.
//   - QuoteTokens takes the shader as individual tokens, joined with single
//     spaces. Directives are rejected on this surface since joining cannot
//     reconstruct their line boundaries.
//
// Example usage:
//
//	src, err := glslquote.QuoteString(`
//	    void main() {
//	    }
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(src)
//
// The cmd/glslgen command wraps the same pipeline for go:generate use,
// writing a complete Go file with a var declaration for the quoted tree.
package glslquote

import (
	"fmt"
	"strings"

	"github.com/gogpu/glslquote/glsl"
	"github.com/gogpu/glslquote/quote"
)

// Parse parses GLSL source code into a translation unit.
//
// This is the first half of quoting. The tree carries no source positions,
// so two parses of equivalent source compare equal with reflect.DeepEqual.
func Parse(source string) (glsl.TranslationUnit, error) {
	lexer := glsl.NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenization error: %w", err)
	}

	parser := glsl.NewParser(tokens)
	tu, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return tu, nil
}

// Quote returns the Go constructor expression for a parsed tree.
func Quote(tu glsl.TranslationUnit) string {
	return quote.Quote(tu)
}

// QuoteString parses a whole GLSL shader and returns its Go constructor
// expression. This surface accepts preprocessor directives.
func QuoteString(source string) (string, error) {
	tu, err := Parse(source)
	if err != nil {
		return "", err
	}
	return quote.Quote(tu), nil
}

// QuoteTokens joins the given tokens with single spaces and quotes the
// result. Tokens starting with '#' are rejected: a preprocessor directive
// extends to the end of its line, which space joining cannot express, so
// directives must go through QuoteString.
func QuoteTokens(tokens ...string) (string, error) {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "#") {
			return "", fmt.Errorf("preprocessor token %q not allowed here, use QuoteString", tok)
		}
	}
	return QuoteString(strings.Join(tokens, " "))
}

// GenerateFile returns a complete generated Go source file declaring the
// quoted tree as a package-level variable.
func GenerateFile(pkg, varName, source string) ([]byte, error) {
	expr, err := QuoteString(source)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("// Code generated by glslgen. DO NOT EDIT.\n\n")
	b.WriteString("package ")
	b.WriteString(pkg)
	b.WriteString("\n\nimport \"github.com/gogpu/glslquote/glsl\"\n\n")
	b.WriteString("var ")
	b.WriteString(varName)
	b.WriteString(" = ")
	b.WriteString(expr)
	b.WriteString("\n")
	return []byte(b.String()), nil
}
