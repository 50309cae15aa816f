// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package quote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/glslquote/glsl"
)

// writer accumulates the generated constructor expression.
type writer struct {
	out    strings.Builder
	indent int
}

// Quote returns the Go constructor expression for the translation unit.
// The expression is gofmt-formatted and evaluates to a tree that compares
// equal to tu with reflect.DeepEqual.
func Quote(tu glsl.TranslationUnit) string {
	w := &writer{}
	w.writeTranslationUnit(tu)
	return w.out.String()
}

func (w *writer) writeTranslationUnit(tu glsl.TranslationUnit) {
	if len(tu) == 0 {
		w.raw("glsl.TranslationUnit{}")
		return
	}

	w.open("glsl.TranslationUnit")
	for _, decl := range tu {
		w.ind()
		w.writeExternalDecl(decl)
		w.raw(",\n")
	}
	w.closeBrace()
}

func (w *writer) writeExternalDecl(decl glsl.ExternalDecl) {
	switch d := decl.(type) {
	case *glsl.PreprocessorVersion:
		w.writePreprocessorVersion(d)
	case *glsl.PreprocessorExtension:
		w.writePreprocessorExtension(d)
	case *glsl.FunctionDefinition:
		w.writeFunctionDefinition(d)
	case *glsl.FunctionPrototype:
		w.raw("&")
		w.writeFunctionPrototype(*d)
	case *glsl.InitDeclaratorList:
		w.writeInitDeclaratorList(d)
	case *glsl.PrecisionDeclaration:
		w.writePrecisionDeclaration(d)
	case *glsl.BlockDeclaration:
		w.writeBlockDeclaration(d)
	case *glsl.GlobalDeclaration:
		w.writeGlobalDeclaration(d)
	default:
		panic(fmt.Sprintf("quote: unknown external declaration %T", decl))
	}
}

// Emission helpers. Values are written inline at the current position;
// multi-line values indent their inner lines and end on the closing brace,
// leaving the trailing comma or newline to the caller.

func (w *writer) raw(s string) {
	w.out.WriteString(s)
}

func (w *writer) ind() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteByte('\t')
	}
}

// open writes "name{" and a newline, entering one indent level.
func (w *writer) open(name string) {
	w.raw(name)
	w.raw("{\n")
	w.indent++
}

// closeBrace leaves one indent level and writes the closing brace.
func (w *writer) closeBrace() {
	w.indent--
	w.ind()
	w.raw("}")
}

// fieldStart writes the indentation and "Name: " of one field line.
func (w *writer) fieldStart(name string) {
	w.ind()
	w.raw(name)
	w.raw(": ")
}

// fieldEnd terminates a field line.
func (w *writer) fieldEnd() {
	w.raw(",\n")
}

// fieldRaw writes a whole field line with a preformatted value.
func (w *writer) fieldRaw(name, value string) {
	w.fieldStart(name)
	w.raw(value)
	w.fieldEnd()
}

// fieldString writes a whole field line with a quoted string value.
func (w *writer) fieldString(name, value string) {
	w.fieldRaw(name, strconv.Quote(value))
}
