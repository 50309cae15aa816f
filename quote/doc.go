// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package quote turns a GLSL syntax tree back into Go source: a constructor
// expression that, compiled and evaluated, rebuilds a structurally identical
// tree.
//
// The emitted expression references the glsl package by its package name and
// uses keyed composite literals, so the output drops into any Go file that
// imports github.com/gogpu/glslquote/glsl. Absent optional fields are
// omitted; everything else is written out explicitly, with no shorthand that
// could diverge from the source tree.
//
// # Basic Usage
//
//	tu, err := glslquote.Parse("void main() {}")
//	src := quote.Quote(tu)
//
// The result for the example above:
//
//	glsl.TranslationUnit{
//		&glsl.FunctionDefinition{
//			Prototype: glsl.FunctionPrototype{
//				ReturnType: glsl.FullySpecifiedType{
//					Type: glsl.TypeSpecifier{Type: glsl.Void},
//				},
//				Name: "main",
//			},
//			Body: glsl.CompoundStatement{},
//		},
//	}
//
// Every tree variant has an explicit emission case. An unknown variant is a
// defect in this package and panics rather than producing a silently wrong
// expression.
package quote
