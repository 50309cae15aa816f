package glsl

// typeKindNames is the GLSL source spelling of every TypeKind, indexed by
// kind. Order must match the const block in ast.go.
var typeKindNames = [...]string{
	Void:                   "void",
	Bool:                   "bool",
	Int:                    "int",
	UInt:                   "uint",
	Float:                  "float",
	Double:                 "double",
	Vec2:                   "vec2",
	Vec3:                   "vec3",
	Vec4:                   "vec4",
	DVec2:                  "dvec2",
	DVec3:                  "dvec3",
	DVec4:                  "dvec4",
	BVec2:                  "bvec2",
	BVec3:                  "bvec3",
	BVec4:                  "bvec4",
	IVec2:                  "ivec2",
	IVec3:                  "ivec3",
	IVec4:                  "ivec4",
	UVec2:                  "uvec2",
	UVec3:                  "uvec3",
	UVec4:                  "uvec4",
	Mat2:                   "mat2",
	Mat3:                   "mat3",
	Mat4:                   "mat4",
	Mat23:                  "mat2x3",
	Mat24:                  "mat2x4",
	Mat32:                  "mat3x2",
	Mat34:                  "mat3x4",
	Mat42:                  "mat4x2",
	Mat43:                  "mat4x3",
	DMat2:                  "dmat2",
	DMat3:                  "dmat3",
	DMat4:                  "dmat4",
	DMat23:                 "dmat2x3",
	DMat24:                 "dmat2x4",
	DMat32:                 "dmat3x2",
	DMat34:                 "dmat3x4",
	DMat42:                 "dmat4x2",
	DMat43:                 "dmat4x3",
	Sampler1D:              "sampler1D",
	Image1D:                "image1D",
	Sampler2D:              "sampler2D",
	Image2D:                "image2D",
	Sampler3D:              "sampler3D",
	Image3D:                "image3D",
	SamplerCube:            "samplerCube",
	ImageCube:              "imageCube",
	Sampler2DRect:          "sampler2DRect",
	Image2DRect:            "image2DRect",
	Sampler1DArray:         "sampler1DArray",
	Image1DArray:           "image1DArray",
	Sampler2DArray:         "sampler2DArray",
	Image2DArray:           "image2DArray",
	SamplerBuffer:          "samplerBuffer",
	ImageBuffer:            "imageBuffer",
	Sampler2DMS:            "sampler2DMS",
	Image2DMS:              "image2DMS",
	Sampler2DMSArray:       "sampler2DMSArray",
	Image2DMSArray:         "image2DMSArray",
	SamplerCubeArray:       "samplerCubeArray",
	ImageCubeArray:         "imageCubeArray",
	Sampler1DShadow:        "sampler1DShadow",
	Sampler2DShadow:        "sampler2DShadow",
	Sampler2DRectShadow:    "sampler2DRectShadow",
	Sampler1DArrayShadow:   "sampler1DArrayShadow",
	Sampler2DArrayShadow:   "sampler2DArrayShadow",
	SamplerCubeShadow:      "samplerCubeShadow",
	SamplerCubeArrayShadow: "samplerCubeArrayShadow",
	ISampler1D:             "isampler1D",
	IImage1D:               "iimage1D",
	ISampler2D:             "isampler2D",
	IImage2D:               "iimage2D",
	ISampler3D:             "isampler3D",
	IImage3D:               "iimage3D",
	ISamplerCube:           "isamplerCube",
	IImageCube:             "iimageCube",
	ISampler2DRect:         "isampler2DRect",
	IImage2DRect:           "iimage2DRect",
	ISampler1DArray:        "isampler1DArray",
	IImage1DArray:          "iimage1DArray",
	ISampler2DArray:        "isampler2DArray",
	IImage2DArray:          "iimage2DArray",
	ISamplerBuffer:         "isamplerBuffer",
	IImageBuffer:           "iimageBuffer",
	ISampler2DMS:           "isampler2DMS",
	IImage2DMS:             "iimage2DMS",
	ISampler2DMSArray:      "isampler2DMSArray",
	IImage2DMSArray:        "iimage2DMSArray",
	ISamplerCubeArray:      "isamplerCubeArray",
	IImageCubeArray:        "iimageCubeArray",
	AtomicUInt:             "atomic_uint",
	USampler1D:             "usampler1D",
	UImage1D:               "uimage1D",
	USampler2D:             "usampler2D",
	UImage2D:               "uimage2D",
	USampler3D:             "usampler3D",
	UImage3D:               "uimage3D",
	USamplerCube:           "usamplerCube",
	UImageCube:             "uimageCube",
	USampler2DRect:         "usampler2DRect",
	UImage2DRect:           "uimage2DRect",
	USampler1DArray:        "usampler1DArray",
	UImage1DArray:          "uimage1DArray",
	USampler2DArray:        "usampler2DArray",
	UImage2DArray:          "uimage2DArray",
	USamplerBuffer:         "usamplerBuffer",
	UImageBuffer:           "uimageBuffer",
	USampler2DMS:           "usampler2DMS",
	UImage2DMS:             "uimage2DMS",
	USampler2DMSArray:      "usampler2DMSArray",
	UImage2DMSArray:        "uimage2DMSArray",
	USamplerCubeArray:      "usamplerCubeArray",
	UImageCubeArray:        "uimageCubeArray",
}

// typeKinds resolves a GLSL type spelling to its TypeKind. The parser uses
// it to recognize built-in type names, which are lexed as identifiers.
var typeKinds = make(map[string]TypeKind, len(typeKindNames))

func init() {
	for k, name := range typeKindNames {
		typeKinds[name] = TypeKind(k)
	}
}

// LookupTypeKind resolves a GLSL type name. The boolean reports whether the
// name is a built-in type.
func LookupTypeKind(name string) (TypeKind, bool) {
	k, ok := typeKinds[name]
	return k, ok
}
