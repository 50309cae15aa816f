// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package quote

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glslquote/glsl"
)

func storageKindName(s glsl.StorageKind) string {
	switch s {
	case glsl.StorageConst:
		return "glsl.StorageConst"
	case glsl.StorageInOut:
		return "glsl.StorageInOut"
	case glsl.StorageIn:
		return "glsl.StorageIn"
	case glsl.StorageOut:
		return "glsl.StorageOut"
	case glsl.StorageCentroid:
		return "glsl.StorageCentroid"
	case glsl.StoragePatch:
		return "glsl.StoragePatch"
	case glsl.StorageSample:
		return "glsl.StorageSample"
	case glsl.StorageUniform:
		return "glsl.StorageUniform"
	case glsl.StorageBuffer:
		return "glsl.StorageBuffer"
	case glsl.StorageShared:
		return "glsl.StorageShared"
	case glsl.StorageCoherent:
		return "glsl.StorageCoherent"
	case glsl.StorageVolatile:
		return "glsl.StorageVolatile"
	case glsl.StorageRestrict:
		return "glsl.StorageRestrict"
	case glsl.StorageReadOnly:
		return "glsl.StorageReadOnly"
	case glsl.StorageWriteOnly:
		return "glsl.StorageWriteOnly"
	default:
		panic(fmt.Sprintf("quote: unknown storage qualifier %d", s))
	}
}

func precisionQualifierName(p glsl.PrecisionQualifier) string {
	switch p {
	case glsl.PrecisionHigh:
		return "glsl.PrecisionHigh"
	case glsl.PrecisionMedium:
		return "glsl.PrecisionMedium"
	case glsl.PrecisionLow:
		return "glsl.PrecisionLow"
	default:
		panic(fmt.Sprintf("quote: unknown precision qualifier %d", p))
	}
}

func interpolationQualifierName(i glsl.InterpolationQualifier) string {
	switch i {
	case glsl.InterpSmooth:
		return "glsl.InterpSmooth"
	case glsl.InterpFlat:
		return "glsl.InterpFlat"
	case glsl.InterpNoPerspective:
		return "glsl.InterpNoPerspective"
	default:
		panic(fmt.Sprintf("quote: unknown interpolation qualifier %d", i))
	}
}

func (w *writer) writeTypeQualifier(qual glsl.TypeQualifier) {
	w.open("glsl.TypeQualifier")
	w.fieldStart("Qualifiers")
	w.open("[]glsl.TypeQualifierSpec")
	for _, spec := range qual.Qualifiers {
		w.ind()
		w.writeTypeQualifierSpec(spec)
		w.raw(",\n")
	}
	w.closeBrace()
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeTypeQualifierSpec(spec glsl.TypeQualifierSpec) {
	switch spec := spec.(type) {
	case glsl.StorageKind:
		w.raw(storageKindName(spec))
	case glsl.Subroutine:
		w.writeSubroutine(spec)
	case *glsl.LayoutQualifier:
		w.writeLayoutQualifier(spec)
	case glsl.PrecisionQualifier:
		w.raw(precisionQualifierName(spec))
	case glsl.InterpolationQualifier:
		w.raw(interpolationQualifierName(spec))
	case glsl.Invariant:
		w.raw("glsl.Invariant{}")
	case glsl.Precise:
		w.raw("glsl.Precise{}")
	default:
		panic(fmt.Sprintf("quote: unknown type qualifier spec %T", spec))
	}
}

func (w *writer) writeSubroutine(sub glsl.Subroutine) {
	if sub == nil {
		w.raw("glsl.Subroutine(nil)")
		return
	}
	w.raw("glsl.Subroutine{")
	for i, name := range sub {
		if i > 0 {
			w.raw(", ")
		}
		w.raw("glsl.TypeName(")
		w.raw(strconv.Quote(string(name)))
		w.raw(")")
	}
	w.raw("}")
}

func (w *writer) writeLayoutQualifier(layout *glsl.LayoutQualifier) {
	w.open("&glsl.LayoutQualifier")
	w.fieldStart("IDs")
	w.open("[]glsl.LayoutQualifierSpec")
	for _, id := range layout.IDs {
		w.ind()
		w.writeLayoutQualifierSpec(id)
		w.raw(",\n")
	}
	w.closeBrace()
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeLayoutQualifierSpec(spec glsl.LayoutQualifierSpec) {
	switch spec := spec.(type) {
	case *glsl.LayoutIdent:
		if spec.Value == nil {
			w.raw("&glsl.LayoutIdent{Name: ")
			w.raw(strconv.Quote(spec.Name))
			w.raw("}")
			return
		}
		w.open("&glsl.LayoutIdent")
		w.fieldString("Name", spec.Name)
		w.fieldStart("Value")
		w.writeExpr(spec.Value)
		w.fieldEnd()
		w.closeBrace()
	case glsl.LayoutShared:
		w.raw("glsl.LayoutShared{}")
	default:
		panic(fmt.Sprintf("quote: unknown layout qualifier spec %T", spec))
	}
}
