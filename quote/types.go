// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package quote

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glslquote/glsl"
)

// typeKindName returns the Go constant name of a built-in type. Every
// catalog entry has its own case so that a catalog extension without a
// matching case here fails loudly instead of emitting a wrong name.
func typeKindName(k glsl.TypeKind) string {
	switch k {
	case glsl.Void:
		return "glsl.Void"
	case glsl.Bool:
		return "glsl.Bool"
	case glsl.Int:
		return "glsl.Int"
	case glsl.UInt:
		return "glsl.UInt"
	case glsl.Float:
		return "glsl.Float"
	case glsl.Double:
		return "glsl.Double"
	case glsl.Vec2:
		return "glsl.Vec2"
	case glsl.Vec3:
		return "glsl.Vec3"
	case glsl.Vec4:
		return "glsl.Vec4"
	case glsl.DVec2:
		return "glsl.DVec2"
	case glsl.DVec3:
		return "glsl.DVec3"
	case glsl.DVec4:
		return "glsl.DVec4"
	case glsl.BVec2:
		return "glsl.BVec2"
	case glsl.BVec3:
		return "glsl.BVec3"
	case glsl.BVec4:
		return "glsl.BVec4"
	case glsl.IVec2:
		return "glsl.IVec2"
	case glsl.IVec3:
		return "glsl.IVec3"
	case glsl.IVec4:
		return "glsl.IVec4"
	case glsl.UVec2:
		return "glsl.UVec2"
	case glsl.UVec3:
		return "glsl.UVec3"
	case glsl.UVec4:
		return "glsl.UVec4"
	case glsl.Mat2:
		return "glsl.Mat2"
	case glsl.Mat3:
		return "glsl.Mat3"
	case glsl.Mat4:
		return "glsl.Mat4"
	case glsl.Mat23:
		return "glsl.Mat23"
	case glsl.Mat24:
		return "glsl.Mat24"
	case glsl.Mat32:
		return "glsl.Mat32"
	case glsl.Mat34:
		return "glsl.Mat34"
	case glsl.Mat42:
		return "glsl.Mat42"
	case glsl.Mat43:
		return "glsl.Mat43"
	case glsl.DMat2:
		return "glsl.DMat2"
	case glsl.DMat3:
		return "glsl.DMat3"
	case glsl.DMat4:
		return "glsl.DMat4"
	case glsl.DMat23:
		return "glsl.DMat23"
	case glsl.DMat24:
		return "glsl.DMat24"
	case glsl.DMat32:
		return "glsl.DMat32"
	case glsl.DMat34:
		return "glsl.DMat34"
	case glsl.DMat42:
		return "glsl.DMat42"
	case glsl.DMat43:
		return "glsl.DMat43"
	case glsl.Sampler1D:
		return "glsl.Sampler1D"
	case glsl.Image1D:
		return "glsl.Image1D"
	case glsl.Sampler2D:
		return "glsl.Sampler2D"
	case glsl.Image2D:
		return "glsl.Image2D"
	case glsl.Sampler3D:
		return "glsl.Sampler3D"
	case glsl.Image3D:
		return "glsl.Image3D"
	case glsl.SamplerCube:
		return "glsl.SamplerCube"
	case glsl.ImageCube:
		return "glsl.ImageCube"
	case glsl.Sampler2DRect:
		return "glsl.Sampler2DRect"
	case glsl.Image2DRect:
		return "glsl.Image2DRect"
	case glsl.Sampler1DArray:
		return "glsl.Sampler1DArray"
	case glsl.Image1DArray:
		return "glsl.Image1DArray"
	case glsl.Sampler2DArray:
		return "glsl.Sampler2DArray"
	case glsl.Image2DArray:
		return "glsl.Image2DArray"
	case glsl.SamplerBuffer:
		return "glsl.SamplerBuffer"
	case glsl.ImageBuffer:
		return "glsl.ImageBuffer"
	case glsl.Sampler2DMS:
		return "glsl.Sampler2DMS"
	case glsl.Image2DMS:
		return "glsl.Image2DMS"
	case glsl.Sampler2DMSArray:
		return "glsl.Sampler2DMSArray"
	case glsl.Image2DMSArray:
		return "glsl.Image2DMSArray"
	case glsl.SamplerCubeArray:
		return "glsl.SamplerCubeArray"
	case glsl.ImageCubeArray:
		return "glsl.ImageCubeArray"
	case glsl.Sampler1DShadow:
		return "glsl.Sampler1DShadow"
	case glsl.Sampler2DShadow:
		return "glsl.Sampler2DShadow"
	case glsl.Sampler2DRectShadow:
		return "glsl.Sampler2DRectShadow"
	case glsl.Sampler1DArrayShadow:
		return "glsl.Sampler1DArrayShadow"
	case glsl.Sampler2DArrayShadow:
		return "glsl.Sampler2DArrayShadow"
	case glsl.SamplerCubeShadow:
		return "glsl.SamplerCubeShadow"
	case glsl.SamplerCubeArrayShadow:
		return "glsl.SamplerCubeArrayShadow"
	case glsl.ISampler1D:
		return "glsl.ISampler1D"
	case glsl.IImage1D:
		return "glsl.IImage1D"
	case glsl.ISampler2D:
		return "glsl.ISampler2D"
	case glsl.IImage2D:
		return "glsl.IImage2D"
	case glsl.ISampler3D:
		return "glsl.ISampler3D"
	case glsl.IImage3D:
		return "glsl.IImage3D"
	case glsl.ISamplerCube:
		return "glsl.ISamplerCube"
	case glsl.IImageCube:
		return "glsl.IImageCube"
	case glsl.ISampler2DRect:
		return "glsl.ISampler2DRect"
	case glsl.IImage2DRect:
		return "glsl.IImage2DRect"
	case glsl.ISampler1DArray:
		return "glsl.ISampler1DArray"
	case glsl.IImage1DArray:
		return "glsl.IImage1DArray"
	case glsl.ISampler2DArray:
		return "glsl.ISampler2DArray"
	case glsl.IImage2DArray:
		return "glsl.IImage2DArray"
	case glsl.ISamplerBuffer:
		return "glsl.ISamplerBuffer"
	case glsl.IImageBuffer:
		return "glsl.IImageBuffer"
	case glsl.ISampler2DMS:
		return "glsl.ISampler2DMS"
	case glsl.IImage2DMS:
		return "glsl.IImage2DMS"
	case glsl.ISampler2DMSArray:
		return "glsl.ISampler2DMSArray"
	case glsl.IImage2DMSArray:
		return "glsl.IImage2DMSArray"
	case glsl.ISamplerCubeArray:
		return "glsl.ISamplerCubeArray"
	case glsl.IImageCubeArray:
		return "glsl.IImageCubeArray"
	case glsl.AtomicUInt:
		return "glsl.AtomicUInt"
	case glsl.USampler1D:
		return "glsl.USampler1D"
	case glsl.UImage1D:
		return "glsl.UImage1D"
	case glsl.USampler2D:
		return "glsl.USampler2D"
	case glsl.UImage2D:
		return "glsl.UImage2D"
	case glsl.USampler3D:
		return "glsl.USampler3D"
	case glsl.UImage3D:
		return "glsl.UImage3D"
	case glsl.USamplerCube:
		return "glsl.USamplerCube"
	case glsl.UImageCube:
		return "glsl.UImageCube"
	case glsl.USampler2DRect:
		return "glsl.USampler2DRect"
	case glsl.UImage2DRect:
		return "glsl.UImage2DRect"
	case glsl.USampler1DArray:
		return "glsl.USampler1DArray"
	case glsl.UImage1DArray:
		return "glsl.UImage1DArray"
	case glsl.USampler2DArray:
		return "glsl.USampler2DArray"
	case glsl.UImage2DArray:
		return "glsl.UImage2DArray"
	case glsl.USamplerBuffer:
		return "glsl.USamplerBuffer"
	case glsl.UImageBuffer:
		return "glsl.UImageBuffer"
	case glsl.USampler2DMS:
		return "glsl.USampler2DMS"
	case glsl.UImage2DMS:
		return "glsl.UImage2DMS"
	case glsl.USampler2DMSArray:
		return "glsl.USampler2DMSArray"
	case glsl.UImage2DMSArray:
		return "glsl.UImage2DMSArray"
	case glsl.USamplerCubeArray:
		return "glsl.USamplerCubeArray"
	case glsl.UImageCubeArray:
		return "glsl.UImageCubeArray"
	default:
		panic(fmt.Sprintf("quote: unknown type kind %d", k))
	}
}

func (w *writer) writeTypeSpecifierNonArray(ty glsl.TypeSpecifierNonArray) {
	switch ty := ty.(type) {
	case glsl.TypeKind:
		w.raw(typeKindName(ty))
	case glsl.TypeName:
		w.raw("glsl.TypeName(")
		w.raw(strconv.Quote(string(ty)))
		w.raw(")")
	case *glsl.StructSpecifier:
		w.writeStructSpecifier(ty)
	default:
		panic(fmt.Sprintf("quote: unknown type specifier %T", ty))
	}
}

// simpleNonArray reports whether the non-array type renders on one line.
func simpleNonArray(ty glsl.TypeSpecifierNonArray) bool {
	switch ty.(type) {
	case glsl.TypeKind, glsl.TypeName:
		return true
	}
	return false
}

func (w *writer) writeTypeSpecifier(ty glsl.TypeSpecifier) {
	if ty.Array == nil && simpleNonArray(ty.Type) {
		w.raw("glsl.TypeSpecifier{Type: ")
		w.writeTypeSpecifierNonArray(ty.Type)
		w.raw("}")
		return
	}

	w.open("glsl.TypeSpecifier")
	w.fieldStart("Type")
	w.writeTypeSpecifierNonArray(ty.Type)
	w.fieldEnd()
	if ty.Array != nil {
		w.fieldStart("Array")
		w.raw("&")
		w.writeArraySpecifier(*ty.Array)
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writeFullySpecifiedType(ty glsl.FullySpecifiedType) {
	w.open("glsl.FullySpecifiedType")
	if ty.Qualifier != nil {
		w.fieldStart("Qualifier")
		w.raw("&")
		w.writeTypeQualifier(*ty.Qualifier)
		w.fieldEnd()
	}
	w.fieldStart("Type")
	w.writeTypeSpecifier(ty.Type)
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeArraySpecifier(spec glsl.ArraySpecifier) {
	if spec.Size == nil {
		w.raw("glsl.ArraySpecifier{}")
		return
	}
	w.open("glsl.ArraySpecifier")
	w.fieldStart("Size")
	w.writeExpr(spec.Size)
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeArrayedIdentifier(id glsl.ArrayedIdentifier) {
	if id.Array == nil {
		w.raw("glsl.ArrayedIdentifier{Name: ")
		w.raw(strconv.Quote(id.Name))
		w.raw("}")
		return
	}

	w.open("glsl.ArrayedIdentifier")
	w.fieldString("Name", id.Name)
	w.fieldStart("Array")
	w.raw("&")
	w.writeArraySpecifier(*id.Array)
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeStructSpecifier(s *glsl.StructSpecifier) {
	w.open("&glsl.StructSpecifier")
	w.fieldString("Name", s.Name)
	if len(s.Fields) > 0 {
		w.fieldStart("Fields")
		w.writeStructFields(s.Fields)
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writeStructFields(fields []glsl.StructFieldSpecifier) {
	w.open("[]glsl.StructFieldSpecifier")
	for _, field := range fields {
		w.ind()
		w.writeStructField(field)
		w.raw(",\n")
	}
	w.closeBrace()
}

func (w *writer) writeStructField(field glsl.StructFieldSpecifier) {
	w.open("glsl.StructFieldSpecifier")
	if field.Qualifier != nil {
		w.fieldStart("Qualifier")
		w.raw("&")
		w.writeTypeQualifier(*field.Qualifier)
		w.fieldEnd()
	}
	w.fieldStart("Type")
	w.writeTypeSpecifier(field.Type)
	w.fieldEnd()
	w.fieldStart("Identifiers")
	w.open("[]glsl.ArrayedIdentifier")
	for _, id := range field.Identifiers {
		w.ind()
		w.writeArrayedIdentifier(id)
		w.raw(",\n")
	}
	w.closeBrace()
	w.fieldEnd()
	w.closeBrace()
}
