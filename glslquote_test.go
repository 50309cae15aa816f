package glslquote

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/glslquote/glsl"
)

func TestQuoteStringEmptyMain(t *testing.T) {
	src, err := QuoteString("void main() {}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := `glsl.TranslationUnit{
	&glsl.FunctionDefinition{
		Prototype: glsl.FunctionPrototype{
			ReturnType: glsl.FullySpecifiedType{
				Type: glsl.TypeSpecifier{Type: glsl.Void},
			},
			Name: "main",
		},
		Body: glsl.CompoundStatement{},
	},
}`
	if src != want {
		t.Errorf("unexpected output\nwant:\n%s\ngot:\n%s", want, src)
	}
}

func TestQuoteTokensMatchesQuoteString(t *testing.T) {
	fromTokens, err := QuoteTokens("void", "main", "(", ")", "{", "}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	fromString, err := QuoteString("void main() {}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fromTokens != fromString {
		t.Errorf("surfaces disagree\ntokens:\n%s\nstring:\n%s", fromTokens, fromString)
	}
}

func TestQuoteTokensNonVoidFunction(t *testing.T) {
	src, err := QuoteTokens("int", "test", "(", ")", "{", "return", "3.", ";", "}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(src, `Name: "test"`) {
		t.Errorf("missing function name in output:\n%s", src)
	}
	if !strings.Contains(src, "&glsl.FloatConst{Value: 3}") {
		t.Errorf("missing float literal in output:\n%s", src)
	}
}

func TestQuoteStringStructDeclaration(t *testing.T) {
	src, err := QuoteString("struct S { float a, b, c; };")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, frag := range []string{
		`&glsl.StructSpecifier{`,
		`Name: "S"`,
		`glsl.ArrayedIdentifier{Name: "a"}`,
		`glsl.ArrayedIdentifier{Name: "b"}`,
		`glsl.ArrayedIdentifier{Name: "c"}`,
	} {
		if !strings.Contains(src, frag) {
			t.Errorf("missing %q in output:\n%s", frag, src)
		}
	}
}

func TestQuoteStringStructWithInstances(t *testing.T) {
	src, err := QuoteString("struct S { float a, b, c; } foo[3], bar[12], zoo[];")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, frag := range []string{
		`Name: "foo"`,
		`Size: &glsl.IntConst{Value: 3}`,
		`Name: "bar"`,
		`Size: &glsl.IntConst{Value: 12}`,
		`Name: "zoo"`,
		`Array: &glsl.ArraySpecifier{}`,
	} {
		if !strings.Contains(src, frag) {
			t.Errorf("missing %q in output:\n%s", frag, src)
		}
	}
}

func TestQuoteStringWithDirectives(t *testing.T) {
	src, err := QuoteString("#version 330 core\nvoid main() {\n}\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(src, "&glsl.PreprocessorVersion{Version: 330, Profile: glsl.ProfileCore}") {
		t.Errorf("missing version directive in output:\n%s", src)
	}
	if !strings.Contains(src, "&glsl.FunctionDefinition{") {
		t.Errorf("missing function definition in output:\n%s", src)
	}
}

func TestQuoteTokensRejectsDirectives(t *testing.T) {
	_, err := QuoteTokens("#version", "330", "void", "main", "(", ")", "{", "}")
	if err == nil {
		t.Fatal("expected error for directive token")
	}
	if !strings.Contains(err.Error(), "QuoteString") {
		t.Errorf("error should point at the string surface, got: %v", err)
	}
}

func TestQuoteStringParseError(t *testing.T) {
	_, err := QuoteString("void main( {}")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error should carry a position, got: %v", err)
	}
}

func TestParseReturnsTree(t *testing.T) {
	tu, err := Parse("void main() {}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := glsl.TranslationUnit{
		&glsl.FunctionDefinition{
			Prototype: glsl.FunctionPrototype{
				ReturnType: glsl.FullySpecifiedType{
					Type: glsl.TypeSpecifier{Type: glsl.Void},
				},
				Name: "main",
			},
			Body: glsl.CompoundStatement{},
		},
	}
	if !reflect.DeepEqual(tu, want) {
		t.Errorf("expected %#v, got %#v", want, tu)
	}
	if Quote(tu) != Quote(want) {
		t.Error("quoting equal trees produced different text")
	}
}

func TestGenerateFile(t *testing.T) {
	out, err := GenerateFile("shaders", "mainShader", "void main() {}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "// Code generated by glslgen. DO NOT EDIT.\n") {
		t.Errorf("missing generated-code header:\n%s", text)
	}
	for _, frag := range []string{
		"package shaders\n",
		`import "github.com/gogpu/glslquote/glsl"`,
		"var mainShader = glsl.TranslationUnit{",
	} {
		if !strings.Contains(text, frag) {
			t.Errorf("missing %q in output:\n%s", frag, text)
		}
	}
	if !strings.HasSuffix(text, "}\n") {
		t.Errorf("file should end with the closing brace and newline:\n%s", text)
	}
}

func TestGenerateFileParseError(t *testing.T) {
	if _, err := GenerateFile("shaders", "bad", "void main("); err == nil {
		t.Fatal("expected parse error")
	}
}
