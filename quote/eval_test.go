// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package quote

import (
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/glslquote/glsl"
)

// The tests evaluate generated expressions with go/parser and reflection
// instead of compiling them: the expression text is parsed into a Go AST
// and rebuilt into live glsl values, then compared against the source tree
// with reflect.DeepEqual.

// nodeTypes resolves "glsl.X" in composite literals and conversions.
var nodeTypes = map[string]reflect.Type{
	"TranslationUnit":             reflect.TypeOf(glsl.TranslationUnit{}),
	"Variable":                    reflect.TypeOf(glsl.Variable{}),
	"IntConst":                    reflect.TypeOf(glsl.IntConst{}),
	"UIntConst":                   reflect.TypeOf(glsl.UIntConst{}),
	"BoolConst":                   reflect.TypeOf(glsl.BoolConst{}),
	"FloatConst":                  reflect.TypeOf(glsl.FloatConst{}),
	"DoubleConst":                 reflect.TypeOf(glsl.DoubleConst{}),
	"Unary":                       reflect.TypeOf(glsl.Unary{}),
	"Binary":                      reflect.TypeOf(glsl.Binary{}),
	"Ternary":                     reflect.TypeOf(glsl.Ternary{}),
	"Assignment":                  reflect.TypeOf(glsl.Assignment{}),
	"Bracket":                     reflect.TypeOf(glsl.Bracket{}),
	"FunCall":                     reflect.TypeOf(glsl.FunCall{}),
	"FunName":                     reflect.TypeOf(glsl.FunName("")),
	"FunExpr":                     reflect.TypeOf(glsl.FunExpr{}),
	"Dot":                         reflect.TypeOf(glsl.Dot{}),
	"PostInc":                     reflect.TypeOf(glsl.PostInc{}),
	"PostDec":                     reflect.TypeOf(glsl.PostDec{}),
	"Comma":                       reflect.TypeOf(glsl.Comma{}),
	"CompoundStatement":           reflect.TypeOf(glsl.CompoundStatement{}),
	"ExprStatement":               reflect.TypeOf(glsl.ExprStatement{}),
	"SelectionStatement":          reflect.TypeOf(glsl.SelectionStatement{}),
	"SwitchStatement":             reflect.TypeOf(glsl.SwitchStatement{}),
	"CaseLabel":                   reflect.TypeOf(glsl.CaseLabel{}),
	"DefaultLabel":                reflect.TypeOf(glsl.DefaultLabel{}),
	"WhileStatement":              reflect.TypeOf(glsl.WhileStatement{}),
	"DoWhileStatement":            reflect.TypeOf(glsl.DoWhileStatement{}),
	"ForStatement":                reflect.TypeOf(glsl.ForStatement{}),
	"BreakStatement":              reflect.TypeOf(glsl.BreakStatement{}),
	"ContinueStatement":           reflect.TypeOf(glsl.ContinueStatement{}),
	"DiscardStatement":            reflect.TypeOf(glsl.DiscardStatement{}),
	"ReturnStatement":             reflect.TypeOf(glsl.ReturnStatement{}),
	"ConditionExpr":               reflect.TypeOf(glsl.ConditionExpr{}),
	"ConditionAssignment":         reflect.TypeOf(glsl.ConditionAssignment{}),
	"ForInitExpr":                 reflect.TypeOf(glsl.ForInitExpr{}),
	"ForInitDecl":                 reflect.TypeOf(glsl.ForInitDecl{}),
	"ForRest":                     reflect.TypeOf(glsl.ForRest{}),
	"FunctionDefinition":          reflect.TypeOf(glsl.FunctionDefinition{}),
	"FunctionPrototype":           reflect.TypeOf(glsl.FunctionPrototype{}),
	"NamedParameter":              reflect.TypeOf(glsl.NamedParameter{}),
	"UnnamedParameter":            reflect.TypeOf(glsl.UnnamedParameter{}),
	"FunctionParameterDeclarator": reflect.TypeOf(glsl.FunctionParameterDeclarator{}),
	"InitDeclaratorList":          reflect.TypeOf(glsl.InitDeclaratorList{}),
	"SingleDeclaration":           reflect.TypeOf(glsl.SingleDeclaration{}),
	"SingleDeclarationNoType":     reflect.TypeOf(glsl.SingleDeclarationNoType{}),
	"SimpleInitializer":           reflect.TypeOf(glsl.SimpleInitializer{}),
	"ListInitializer":             reflect.TypeOf(glsl.ListInitializer{}),
	"PrecisionDeclaration":        reflect.TypeOf(glsl.PrecisionDeclaration{}),
	"BlockDeclaration":            reflect.TypeOf(glsl.BlockDeclaration{}),
	"GlobalDeclaration":           reflect.TypeOf(glsl.GlobalDeclaration{}),
	"PreprocessorVersion":         reflect.TypeOf(glsl.PreprocessorVersion{}),
	"PreprocessorExtension":       reflect.TypeOf(glsl.PreprocessorExtension{}),
	"ExtensionAll":                reflect.TypeOf(glsl.ExtensionAll{}),
	"ExtensionSpecific":           reflect.TypeOf(glsl.ExtensionSpecific("")),
	"StructSpecifier":             reflect.TypeOf(glsl.StructSpecifier{}),
	"StructFieldSpecifier":        reflect.TypeOf(glsl.StructFieldSpecifier{}),
	"ArraySpecifier":              reflect.TypeOf(glsl.ArraySpecifier{}),
	"ArrayedIdentifier":           reflect.TypeOf(glsl.ArrayedIdentifier{}),
	"TypeSpecifier":               reflect.TypeOf(glsl.TypeSpecifier{}),
	"TypeName":                    reflect.TypeOf(glsl.TypeName("")),
	"FullySpecifiedType":          reflect.TypeOf(glsl.FullySpecifiedType{}),
	"TypeQualifier":               reflect.TypeOf(glsl.TypeQualifier{}),
	"Subroutine":                  reflect.TypeOf(glsl.Subroutine{}),
	"LayoutQualifier":             reflect.TypeOf(glsl.LayoutQualifier{}),
	"LayoutIdent":                 reflect.TypeOf(glsl.LayoutIdent{}),
	"LayoutShared":                reflect.TypeOf(glsl.LayoutShared{}),
	"Invariant":                   reflect.TypeOf(glsl.Invariant{}),
	"Precise":                     reflect.TypeOf(glsl.Precise{}),
}

// sliceElemTypes resolves the element of "[]glsl.X" literals.
var sliceElemTypes = map[string]reflect.Type{
	"Stmt":                    reflect.TypeOf((*glsl.Stmt)(nil)).Elem(),
	"Expr":                    reflect.TypeOf((*glsl.Expr)(nil)).Elem(),
	"TypeQualifierSpec":       reflect.TypeOf((*glsl.TypeQualifierSpec)(nil)).Elem(),
	"LayoutQualifierSpec":     reflect.TypeOf((*glsl.LayoutQualifierSpec)(nil)).Elem(),
	"FunctionParameter":       reflect.TypeOf((*glsl.FunctionParameter)(nil)).Elem(),
	"Initializer":             reflect.TypeOf((*glsl.Initializer)(nil)).Elem(),
	"StructFieldSpecifier":    reflect.TypeOf(glsl.StructFieldSpecifier{}),
	"ArrayedIdentifier":       reflect.TypeOf(glsl.ArrayedIdentifier{}),
	"SingleDeclarationNoType": reflect.TypeOf(glsl.SingleDeclarationNoType{}),
}

// constants resolves "glsl.X" selector references. It is populated from the
// same name tables the writer emits with, so a renamed constant breaks both
// sides at once.
var constants = map[string]reflect.Value{}

func init() {
	reg := func(qualified string, v any) {
		constants[strings.TrimPrefix(qualified, "glsl.")] = reflect.ValueOf(v)
	}
	for k := glsl.Void; k <= glsl.UImageCubeArray; k++ {
		reg(typeKindName(k), k)
	}
	for s := glsl.StorageConst; s <= glsl.StorageWriteOnly; s++ {
		reg(storageKindName(s), s)
	}
	for p := glsl.PrecisionHigh; p <= glsl.PrecisionLow; p++ {
		reg(precisionQualifierName(p), p)
	}
	for i := glsl.InterpSmooth; i <= glsl.InterpNoPerspective; i++ {
		reg(interpolationQualifierName(i), i)
	}
	for op := glsl.UnaryInc; op <= glsl.UnaryComplement; op++ {
		reg(unaryOpName(op), op)
	}
	for op := glsl.BinaryOr; op <= glsl.BinaryMod; op++ {
		reg(binaryOpName(op), op)
	}
	for op := glsl.AssignEqual; op <= glsl.AssignOr; op++ {
		reg(assignOpName(op), op)
	}
	for p := glsl.ProfileCore; p <= glsl.ProfileES; p++ {
		reg(versionProfileName(p), p)
	}
	for b := glsl.BehaviorRequire; b <= glsl.BehaviorDisable; b++ {
		reg(extensionBehaviorName(b), b)
	}
}

// evalNode rebuilds a live value from a parsed constructor expression. The
// zero reflect.Value represents an evaluated nil.
func evalNode(t *testing.T, expr ast.Expr) reflect.Value {
	t.Helper()

	switch e := expr.(type) {
	case *ast.UnaryExpr:
		switch e.Op {
		case token.AND:
			v := evalNode(t, e.X)
			p := reflect.New(v.Type())
			p.Elem().Set(v)
			return p
		case token.SUB:
			v := evalNode(t, e.X)
			switch v.Kind() {
			case reflect.Int64:
				return reflect.ValueOf(-v.Int())
			case reflect.Float64:
				return reflect.ValueOf(-v.Float())
			}
		}
		t.Fatalf("unsupported unary operator %v", e.Op)

	case *ast.BasicLit:
		switch e.Kind {
		case token.INT:
			v, err := strconv.ParseInt(e.Value, 0, 64)
			if err != nil {
				// Out of int64 range means a uint literal.
				u, uerr := strconv.ParseUint(e.Value, 0, 64)
				if uerr != nil {
					t.Fatalf("bad int literal %q: %v", e.Value, err)
				}
				return reflect.ValueOf(u)
			}
			return reflect.ValueOf(v)
		case token.FLOAT:
			v, err := strconv.ParseFloat(e.Value, 64)
			if err != nil {
				t.Fatalf("bad float literal %q: %v", e.Value, err)
			}
			return reflect.ValueOf(v)
		case token.STRING:
			v, err := strconv.Unquote(e.Value)
			if err != nil {
				t.Fatalf("bad string literal %q: %v", e.Value, err)
			}
			return reflect.ValueOf(v)
		}
		t.Fatalf("unsupported literal kind %v", e.Kind)

	case *ast.Ident:
		switch e.Name {
		case "true":
			return reflect.ValueOf(true)
		case "false":
			return reflect.ValueOf(false)
		case "nil":
			return reflect.Value{}
		}
		t.Fatalf("unsupported identifier %q", e.Name)

	case *ast.SelectorExpr:
		if v, ok := constants[e.Sel.Name]; ok {
			return v
		}
		t.Fatalf("unknown constant glsl.%s", e.Sel.Name)

	case *ast.CallExpr:
		sel, ok := e.Fun.(*ast.SelectorExpr)
		if !ok {
			t.Fatalf("unsupported call target %T", e.Fun)
		}
		ty, ok := nodeTypes[sel.Sel.Name]
		if !ok {
			t.Fatalf("unknown conversion type glsl.%s", sel.Sel.Name)
		}
		if len(e.Args) != 1 {
			t.Fatalf("conversion with %d arguments", len(e.Args))
		}
		arg := evalNode(t, e.Args[0])
		if !arg.IsValid() {
			return reflect.Zero(ty)
		}
		return arg.Convert(ty)

	case *ast.CompositeLit:
		return evalComposite(t, e)
	}

	t.Fatalf("unsupported expression %T", expr)
	return reflect.Value{}
}

func evalComposite(t *testing.T, lit *ast.CompositeLit) reflect.Value {
	t.Helper()

	var ty reflect.Type
	switch typeExpr := lit.Type.(type) {
	case *ast.SelectorExpr:
		var ok bool
		ty, ok = nodeTypes[typeExpr.Sel.Name]
		if !ok {
			t.Fatalf("unknown type glsl.%s", typeExpr.Sel.Name)
		}
	case *ast.ArrayType:
		switch elt := typeExpr.Elt.(type) {
		case *ast.SelectorExpr:
			elem, ok := sliceElemTypes[elt.Sel.Name]
			if !ok {
				t.Fatalf("unknown slice element glsl.%s", elt.Sel.Name)
			}
			ty = reflect.SliceOf(elem)
		case *ast.Ident:
			if elt.Name != "string" {
				t.Fatalf("unknown slice element %s", elt.Name)
			}
			ty = reflect.TypeOf([]string{})
		default:
			t.Fatalf("unsupported slice element %T", typeExpr.Elt)
		}
	default:
		t.Fatalf("unsupported composite type %T", lit.Type)
	}

	if ty.Kind() == reflect.Slice {
		s := reflect.MakeSlice(ty, 0, len(lit.Elts))
		for _, elt := range lit.Elts {
			v := evalNode(t, elt)
			s = reflect.Append(s, convertTo(t, v, ty.Elem()))
		}
		return s
	}

	v := reflect.New(ty).Elem()
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			t.Fatalf("positional field in %s literal", ty)
		}
		name := kv.Key.(*ast.Ident).Name
		field := v.FieldByName(name)
		if !field.IsValid() {
			t.Fatalf("unknown field %s.%s", ty, name)
		}
		val := evalNode(t, kv.Value)
		if !val.IsValid() {
			continue
		}
		field.Set(convertTo(t, val, field.Type()))
	}
	return v
}

func convertTo(t *testing.T, v reflect.Value, ty reflect.Type) reflect.Value {
	t.Helper()
	if v.Type().AssignableTo(ty) {
		return v
	}
	if v.Type().ConvertibleTo(ty) {
		return v.Convert(ty)
	}
	t.Fatalf("cannot use %s as %s", v.Type(), ty)
	return reflect.Value{}
}

// roundTrip quotes the tree, evaluates the result and requires structural
// equality, then quotes the rebuilt tree and requires identical text.
func roundTrip(t *testing.T, tu glsl.TranslationUnit) {
	t.Helper()

	src := Quote(tu)
	expr, err := parser.ParseExpr(src)
	if err != nil {
		t.Fatalf("generated expression does not parse: %v\n%s", err, src)
	}

	rebuilt, ok := evalNode(t, expr).Interface().(glsl.TranslationUnit)
	if !ok {
		t.Fatalf("expression did not evaluate to a translation unit:\n%s", src)
	}
	if !reflect.DeepEqual(rebuilt, tu) {
		t.Fatalf("round trip mismatch\nwant %#v\ngot  %#v\nexpression:\n%s", tu, rebuilt, src)
	}

	again := Quote(rebuilt)
	if again != src {
		t.Fatalf("quoting is not stable\nfirst:\n%s\nsecond:\n%s", src, again)
	}
}

// roundTripSource parses GLSL and round-trips the resulting tree.
func roundTripSource(t *testing.T, source string) {
	t.Helper()

	lexer := glsl.NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Lexer error: %v", err)
	}
	tu, perr := glsl.NewParser(tokens).Parse()
	if perr != nil {
		t.Fatalf("Parse error: %v", perr)
	}
	roundTrip(t, tu)
}
