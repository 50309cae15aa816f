// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package quote

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glslquote/glsl"
)

func (w *writer) writeDeclaration(decl glsl.Declaration) {
	switch d := decl.(type) {
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
		panic(fmt.Sprintf("quote: unknown declaration %T", decl))
	}
}

func (w *writer) writeFunctionDefinition(def *glsl.FunctionDefinition) {
	w.open("&glsl.FunctionDefinition")
	w.fieldStart("Prototype")
	w.writeFunctionPrototype(def.Prototype)
	w.fieldEnd()
	w.fieldStart("Body")
	w.writeCompoundStatement(def.Body)
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeFunctionPrototype(proto glsl.FunctionPrototype) {
	w.open("glsl.FunctionPrototype")
	w.fieldStart("ReturnType")
	w.writeFullySpecifiedType(proto.ReturnType)
	w.fieldEnd()
	w.fieldString("Name", proto.Name)
	if len(proto.Parameters) > 0 {
		w.fieldStart("Parameters")
		w.open("[]glsl.FunctionParameter")
		for _, param := range proto.Parameters {
			w.ind()
			w.writeFunctionParameter(param)
			w.raw(",\n")
		}
		w.closeBrace()
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writeFunctionParameter(param glsl.FunctionParameter) {
	switch p := param.(type) {
	case *glsl.NamedParameter:
		w.open("&glsl.NamedParameter")
		if p.Qualifier != nil {
			w.fieldStart("Qualifier")
			w.raw("&")
			w.writeTypeQualifier(*p.Qualifier)
			w.fieldEnd()
		}
		w.fieldStart("Declarator")
		w.open("glsl.FunctionParameterDeclarator")
		w.fieldStart("Type")
		w.writeTypeSpecifier(p.Declarator.Type)
		w.fieldEnd()
		w.fieldString("Name", p.Declarator.Name)
		if p.Declarator.Array != nil {
			w.fieldStart("Array")
			w.raw("&")
			w.writeArraySpecifier(*p.Declarator.Array)
			w.fieldEnd()
		}
		w.closeBrace()
		w.fieldEnd()
		w.closeBrace()
	case *glsl.UnnamedParameter:
		w.open("&glsl.UnnamedParameter")
		if p.Qualifier != nil {
			w.fieldStart("Qualifier")
			w.raw("&")
			w.writeTypeQualifier(*p.Qualifier)
			w.fieldEnd()
		}
		w.fieldStart("Type")
		w.writeTypeSpecifier(p.Type)
		w.fieldEnd()
		w.closeBrace()
	default:
		panic(fmt.Sprintf("quote: unknown function parameter %T", param))
	}
}

func (w *writer) writeInitDeclaratorList(list *glsl.InitDeclaratorList) {
	w.open("&glsl.InitDeclaratorList")
	w.fieldStart("Head")
	w.writeSingleDeclaration(list.Head)
	w.fieldEnd()
	if len(list.Tail) > 0 {
		w.fieldStart("Tail")
		w.open("[]glsl.SingleDeclarationNoType")
		for _, decl := range list.Tail {
			w.ind()
			w.writeSingleDeclarationNoType(decl)
			w.raw(",\n")
		}
		w.closeBrace()
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writeSingleDeclaration(decl glsl.SingleDeclaration) {
	w.open("glsl.SingleDeclaration")
	w.fieldStart("Type")
	w.writeFullySpecifiedType(decl.Type)
	w.fieldEnd()
	if decl.Name != "" {
		w.fieldString("Name", decl.Name)
	}
	if decl.Array != nil {
		w.fieldStart("Array")
		w.raw("&")
		w.writeArraySpecifier(*decl.Array)
		w.fieldEnd()
	}
	if decl.Initializer != nil {
		w.fieldStart("Initializer")
		w.writeInitializer(decl.Initializer)
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writeSingleDeclarationNoType(decl glsl.SingleDeclarationNoType) {
	w.open("glsl.SingleDeclarationNoType")
	w.fieldString("Name", decl.Name)
	if decl.Array != nil {
		w.fieldStart("Array")
		w.raw("&")
		w.writeArraySpecifier(*decl.Array)
		w.fieldEnd()
	}
	if decl.Initializer != nil {
		w.fieldStart("Initializer")
		w.writeInitializer(decl.Initializer)
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writePrecisionDeclaration(decl *glsl.PrecisionDeclaration) {
	w.open("&glsl.PrecisionDeclaration")
	w.fieldRaw("Qualifier", precisionQualifierName(decl.Qualifier))
	w.fieldStart("Type")
	w.writeTypeSpecifier(decl.Type)
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeBlockDeclaration(decl *glsl.BlockDeclaration) {
	w.open("&glsl.BlockDeclaration")
	w.fieldStart("Qualifier")
	w.writeTypeQualifier(decl.Qualifier)
	w.fieldEnd()
	w.fieldString("Name", decl.Name)
	if len(decl.Fields) > 0 {
		w.fieldStart("Fields")
		w.writeStructFields(decl.Fields)
		w.fieldEnd()
	}
	if decl.Identifier != nil {
		w.fieldStart("Identifier")
		w.raw("&")
		w.writeArrayedIdentifier(*decl.Identifier)
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writeGlobalDeclaration(decl *glsl.GlobalDeclaration) {
	w.open("&glsl.GlobalDeclaration")
	w.fieldStart("Qualifier")
	w.writeTypeQualifier(decl.Qualifier)
	w.fieldEnd()
	if len(decl.Identifiers) > 0 {
		w.fieldStart("Identifiers")
		w.writeIdentifiers(decl.Identifiers)
		w.fieldEnd()
	}
	w.closeBrace()
}

func versionProfileName(p glsl.VersionProfile) string {
	switch p {
	case glsl.ProfileCore:
		return "glsl.ProfileCore"
	case glsl.ProfileCompatibility:
		return "glsl.ProfileCompatibility"
	case glsl.ProfileES:
		return "glsl.ProfileES"
	default:
		panic(fmt.Sprintf("quote: unknown version profile %d", p))
	}
}

func extensionBehaviorName(b glsl.ExtensionBehavior) string {
	switch b {
	case glsl.BehaviorRequire:
		return "glsl.BehaviorRequire"
	case glsl.BehaviorEnable:
		return "glsl.BehaviorEnable"
	case glsl.BehaviorWarn:
		return "glsl.BehaviorWarn"
	case glsl.BehaviorDisable:
		return "glsl.BehaviorDisable"
	default:
		panic(fmt.Sprintf("quote: unknown extension behavior %d", b))
	}
}

func (w *writer) writePreprocessorVersion(v *glsl.PreprocessorVersion) {
	w.raw("&glsl.PreprocessorVersion{Version: ")
	w.raw(strconv.Itoa(v.Version))
	if v.Profile != glsl.ProfileNone {
		w.raw(", Profile: ")
		w.raw(versionProfileName(v.Profile))
	}
	w.raw("}")
}

func (w *writer) writePreprocessorExtension(e *glsl.PreprocessorExtension) {
	w.raw("&glsl.PreprocessorExtension{Name: ")
	switch name := e.Name.(type) {
	case glsl.ExtensionAll:
		w.raw("glsl.ExtensionAll{}")
	case glsl.ExtensionSpecific:
		w.raw("glsl.ExtensionSpecific(")
		w.raw(strconv.Quote(string(name)))
		w.raw(")")
	default:
		panic(fmt.Sprintf("quote: unknown extension name %T", e.Name))
	}
	if e.Behavior != glsl.BehaviorNone {
		w.raw(", Behavior: ")
		w.raw(extensionBehaviorName(e.Behavior))
	}
	w.raw("}")
}
