// Command glslgen quotes GLSL shaders as generated Go source.
//
// Usage:
//
//	glslgen [options] [token ...]
//
// The shader comes either from a file (-src, with "-" for stdin) or from
// the positional arguments, which are treated as individual GLSL tokens
// joined with spaces. Preprocessor directives require the file form.
//
// Examples:
//
//	glslgen -src shader.vert -pkg shaders -var vertShader -o vert.go
//	glslgen -pkg shaders -var tiny void main '(' ')' '{' '}'
//	cat shader.frag | glslgen -src - -pkg shaders -var fragShader
//
// The output is a complete Go file, suitable for go:generate:
//
//	//go:generate glslgen -src shader.vert -pkg shaders -var vertShader -o vert.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/glslquote"
)

var (
	output   = flag.String("o", "", "output file (default: stdout)")
	pkgName  = flag.String("pkg", "main", "package name of the generated file")
	varName  = flag.String("var", "shader", "variable name of the quoted tree")
	srcPath  = flag.String("src", "", "read the shader from a file, or stdin with \"-\"")
	exprOnly = flag.Bool("expr", false, "print only the constructor expression")
	version  = flag.Bool("version", false, "print version")
)

const glslgenVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("glslgen version %s\n", glslgenVersion)
		return
	}

	source, err := shaderSource(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	if *exprOnly {
		expr, err := glslquote.QuoteString(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out = []byte(expr + "\n")
	} else {
		out, err = glslquote.GenerateFile(*pkgName, *varName, source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// shaderSource resolves the shader input from -src or positional tokens.
func shaderSource(args []string) (string, error) {
	if *srcPath != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("-src and token arguments are mutually exclusive")
		}
		if *srcPath == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		data, err := os.ReadFile(*srcPath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	for _, tok := range args {
		if strings.HasPrefix(tok, "#") {
			return "", fmt.Errorf("preprocessor token %q not allowed here, use -src", tok)
		}
	}
	return strings.Join(args, " "), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: glslgen [options] [token ...]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  glslgen -src shader.vert -pkg shaders -var vertShader -o vert.go\n")
	fmt.Fprintf(os.Stderr, "  glslgen -pkg shaders -var tiny void main '(' ')' '{' '}'\n")
	fmt.Fprintf(os.Stderr, "  cat shader.frag | glslgen -src - -pkg shaders -var fragShader\n")
}
