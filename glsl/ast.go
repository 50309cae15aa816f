package glsl

// The syntax tree mirrors the GLSL 4.5 grammar. Nodes carry no source
// positions: a parsed tree and a reconstructed tree must compare equal with
// reflect.DeepEqual, and positions only exist on tokens and parse errors.
//
// Optional fields are nil pointers or nil interfaces; optional names are ""
// and list fields are nil when empty.

// TranslationUnit is an ordered sequence of external declarations.
type TranslationUnit []ExternalDecl

// ExternalDecl is a top-level item of a translation unit: a preprocessor
// directive, a function definition, or a declaration.
type ExternalDecl interface {
	externalDecl()
}

// Declaration is one of the five declaration forms. Declarations are also
// statements and external declarations.
type Declaration interface {
	ExternalDecl
	Stmt
	declNode()
}

// Stmt is the interface for statements.
type Stmt interface {
	stmtNode()
}

// Expr is the interface for expressions.
type Expr interface {
	exprNode()
}

// Types

// TypeSpecifierNonArray is the non-array part of a type specifier: one of
// the built-in TypeKind catalog entries, a struct specifier, or a named
// (user-declared) type.
type TypeSpecifierNonArray interface {
	typeSpecifierNonArray()
}

// TypeKind is the closed catalog of built-in scalar, vector, matrix,
// sampler, image and atomic types.
type TypeKind uint8

func (TypeKind) typeSpecifierNonArray() {}

const (
	Void TypeKind = iota
	Bool
	Int
	UInt
	Float
	Double
	Vec2
	Vec3
	Vec4
	DVec2
	DVec3
	DVec4
	BVec2
	BVec3
	BVec4
	IVec2
	IVec3
	IVec4
	UVec2
	UVec3
	UVec4
	Mat2
	Mat3
	Mat4
	Mat23
	Mat24
	Mat32
	Mat34
	Mat42
	Mat43
	DMat2
	DMat3
	DMat4
	DMat23
	DMat24
	DMat32
	DMat34
	DMat42
	DMat43
	Sampler1D
	Image1D
	Sampler2D
	Image2D
	Sampler3D
	Image3D
	SamplerCube
	ImageCube
	Sampler2DRect
	Image2DRect
	Sampler1DArray
	Image1DArray
	Sampler2DArray
	Image2DArray
	SamplerBuffer
	ImageBuffer
	Sampler2DMS
	Image2DMS
	Sampler2DMSArray
	Image2DMSArray
	SamplerCubeArray
	ImageCubeArray
	Sampler1DShadow
	Sampler2DShadow
	Sampler2DRectShadow
	Sampler1DArrayShadow
	Sampler2DArrayShadow
	SamplerCubeShadow
	SamplerCubeArrayShadow
	ISampler1D
	IImage1D
	ISampler2D
	IImage2D
	ISampler3D
	IImage3D
	ISamplerCube
	IImageCube
	ISampler2DRect
	IImage2DRect
	ISampler1DArray
	IImage1DArray
	ISampler2DArray
	IImage2DArray
	ISamplerBuffer
	IImageBuffer
	ISampler2DMS
	IImage2DMS
	ISampler2DMSArray
	IImage2DMSArray
	ISamplerCubeArray
	IImageCubeArray
	AtomicUInt
	USampler1D
	UImage1D
	USampler2D
	UImage2D
	USampler3D
	UImage3D
	USamplerCube
	UImageCube
	USampler2DRect
	UImage2DRect
	USampler1DArray
	UImage1DArray
	USampler2DArray
	UImage2DArray
	USamplerBuffer
	UImageBuffer
	USampler2DMS
	UImage2DMS
	USampler2DMSArray
	UImage2DMSArray
	USamplerCubeArray
	UImageCubeArray
)

// String returns the GLSL source spelling of the type.
func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return "Unknown"
}

// TypeName is a reference to a user-declared type.
type TypeName string

func (TypeName) typeSpecifierNonArray() {}

// StructSpecifier is a struct definition used as a type specifier.
type StructSpecifier struct {
	Name   string
	Fields []StructFieldSpecifier
}

func (*StructSpecifier) typeSpecifierNonArray() {}

// StructFieldSpecifier is one field line of a struct or interface block:
// one type, one or more arrayed identifiers.
type StructFieldSpecifier struct {
	Qualifier   *TypeQualifier
	Type        TypeSpecifier
	Identifiers []ArrayedIdentifier
}

// ArraySpecifier is an array dimension. Size is nil when unsized.
type ArraySpecifier struct {
	Size Expr
}

// ArrayedIdentifier is an identifier with an optional array specifier.
type ArrayedIdentifier struct {
	Name  string
	Array *ArraySpecifier
}

// TypeSpecifier combines a non-array type with an optional array specifier.
type TypeSpecifier struct {
	Type  TypeSpecifierNonArray
	Array *ArraySpecifier
}

// FullySpecifiedType is a type specifier with an optional qualifier.
type FullySpecifiedType struct {
	Qualifier *TypeQualifier
	Type      TypeSpecifier
}

// Qualifiers

// TypeQualifier is an ordered list of qualifier specs. Order is semantically
// meaningful and is preserved as written.
type TypeQualifier struct {
	Qualifiers []TypeQualifierSpec
}

// TypeQualifierSpec is one qualifier: storage, layout, precision,
// interpolation, invariant or precise.
type TypeQualifierSpec interface {
	typeQualifierSpec()
}

// StorageKind is a plain storage qualifier.
type StorageKind uint8

func (StorageKind) typeQualifierSpec() {}

const (
	StorageConst StorageKind = iota
	StorageInOut
	StorageIn
	StorageOut
	StorageCentroid
	StoragePatch
	StorageSample
	StorageUniform
	StorageBuffer
	StorageShared
	StorageCoherent
	StorageVolatile
	StorageRestrict
	StorageReadOnly
	StorageWriteOnly
)

// String returns the GLSL source spelling of the storage qualifier.
func (s StorageKind) String() string {
	switch s {
	case StorageConst:
		return "const"
	case StorageInOut:
		return "inout"
	case StorageIn:
		return "in"
	case StorageOut:
		return "out"
	case StorageCentroid:
		return "centroid"
	case StoragePatch:
		return "patch"
	case StorageSample:
		return "sample"
	case StorageUniform:
		return "uniform"
	case StorageBuffer:
		return "buffer"
	case StorageShared:
		return "shared"
	case StorageCoherent:
		return "coherent"
	case StorageVolatile:
		return "volatile"
	case StorageRestrict:
		return "restrict"
	case StorageReadOnly:
		return "readonly"
	case StorageWriteOnly:
		return "writeonly"
	default:
		return "Unknown"
	}
}

// Subroutine is the subroutine storage qualifier with its (possibly empty)
// list of subroutine type names.
type Subroutine []TypeName

func (Subroutine) typeQualifierSpec() {}

// LayoutQualifier is layout(...) with its ordered spec list.
type LayoutQualifier struct {
	IDs []LayoutQualifierSpec
}

func (*LayoutQualifier) typeQualifierSpec() {}

// LayoutQualifierSpec is one entry of a layout qualifier.
type LayoutQualifierSpec interface {
	layoutQualifierSpec()
}

// LayoutIdent is a named layout entry with an optional constant value,
// e.g. location = 0 or std140.
type LayoutIdent struct {
	Name  string
	Value Expr
}

func (*LayoutIdent) layoutQualifierSpec() {}

// LayoutShared is the bare "shared" layout marker.
type LayoutShared struct{}

func (LayoutShared) layoutQualifierSpec() {}

// PrecisionQualifier is highp, mediump or lowp.
type PrecisionQualifier uint8

func (PrecisionQualifier) typeQualifierSpec() {}

const (
	PrecisionHigh PrecisionQualifier = iota
	PrecisionMedium
	PrecisionLow
)

// String returns the GLSL source spelling of the precision qualifier.
func (p PrecisionQualifier) String() string {
	switch p {
	case PrecisionHigh:
		return "highp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionLow:
		return "lowp"
	default:
		return "Unknown"
	}
}

// InterpolationQualifier is smooth, flat or noperspective.
type InterpolationQualifier uint8

func (InterpolationQualifier) typeQualifierSpec() {}

const (
	InterpSmooth InterpolationQualifier = iota
	InterpFlat
	InterpNoPerspective
)

// String returns the GLSL source spelling of the interpolation qualifier.
func (i InterpolationQualifier) String() string {
	switch i {
	case InterpSmooth:
		return "smooth"
	case InterpFlat:
		return "flat"
	case InterpNoPerspective:
		return "noperspective"
	default:
		return "Unknown"
	}
}

// Invariant is the invariant qualifier.
type Invariant struct{}

func (Invariant) typeQualifierSpec() {}

// Precise is the precise qualifier.
type Precise struct{}

func (Precise) typeQualifierSpec() {}

// Expressions

// Variable is a reference to an identifier.
type Variable struct {
	Name string
}

func (*Variable) exprNode() {}

// IntConst is a signed integer literal.
type IntConst struct {
	Value int32
}

func (*IntConst) exprNode() {}

// UIntConst is an unsigned integer literal.
type UIntConst struct {
	Value uint32
}

func (*UIntConst) exprNode() {}

// BoolConst is a boolean literal.
type BoolConst struct {
	Value bool
}

func (*BoolConst) exprNode() {}

// FloatConst is a single-precision float literal.
type FloatConst struct {
	Value float32
}

func (*FloatConst) exprNode() {}

// DoubleConst is a double-precision float literal.
type DoubleConst struct {
	Value float64
}

func (*DoubleConst) exprNode() {}

// Unary is a prefix unary expression.
type Unary struct {
	Op   UnaryOp
	Expr Expr
}

func (*Unary) exprNode() {}

// Binary is a binary expression.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

// Ternary is a ?: conditional expression.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*Ternary) exprNode() {}

// Assignment is an assignment expression.
type Assignment struct {
	Target Expr
	Op     AssignOp
	Value  Expr
}

func (*Assignment) exprNode() {}

// Bracket is a subscript expression. The index is carried as an array
// specifier, matching the grammar's array subscript production.
type Bracket struct {
	Expr Expr
	Spec ArraySpecifier
}

func (*Bracket) exprNode() {}

// FunCall is a function call or constructor call.
type FunCall struct {
	Fun  FunIdentifier
	Args []Expr
}

func (*FunCall) exprNode() {}

// FunIdentifier names the callee of a function call: a plain name or a
// computed expression.
type FunIdentifier interface {
	funIdentifier()
}

// FunName is a callee named by a plain identifier or type keyword.
type FunName string

func (FunName) funIdentifier() {}

// FunExpr is a callee computed by an expression, e.g. a.length.
type FunExpr struct {
	Expr Expr
}

func (*FunExpr) funIdentifier() {}

// Dot is a member access expression.
type Dot struct {
	Expr  Expr
	Field string
}

func (*Dot) exprNode() {}

// PostInc is a postfix increment expression.
type PostInc struct {
	Expr Expr
}

func (*PostInc) exprNode() {}

// PostDec is a postfix decrement expression.
type PostDec struct {
	Expr Expr
}

func (*PostDec) exprNode() {}

// Comma is a comma-sequencing expression.
type Comma struct {
	Left  Expr
	Right Expr
}

func (*Comma) exprNode() {}

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	UnaryInc UnaryOp = iota
	UnaryDec
	UnaryAdd
	UnaryMinus
	UnaryNot
	UnaryComplement
)

// BinaryOp is a binary operator.
type BinaryOp uint8

const (
	BinaryOr BinaryOp = iota
	BinaryXor
	BinaryAnd
	BinaryBitOr
	BinaryBitXor
	BinaryBitAnd
	BinaryEqual
	BinaryNonEqual
	BinaryLT
	BinaryGT
	BinaryLTE
	BinaryGTE
	BinaryLShift
	BinaryRShift
	BinaryAdd
	BinarySub
	BinaryMult
	BinaryDiv
	BinaryMod
)

// AssignOp is an assignment operator.
type AssignOp uint8

const (
	AssignEqual AssignOp = iota
	AssignMult
	AssignDiv
	AssignMod
	AssignAdd
	AssignSub
	AssignLShift
	AssignRShift
	AssignAnd
	AssignXor
	AssignOr
)

// Statements

// CompoundStatement is a brace-enclosed ordered statement list.
type CompoundStatement struct {
	Statements []Stmt
}

func (*CompoundStatement) stmtNode() {}

// ExprStatement is an expression statement. Expr is nil for the empty
// statement ";".
type ExprStatement struct {
	Expr Expr
}

func (*ExprStatement) stmtNode() {}

// SelectionStatement is an if statement with an optional else branch.
type SelectionStatement struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*SelectionStatement) stmtNode() {}

// SwitchStatement is a switch statement. Case and default labels appear as
// ordinary statements interleaved in Body.
type SwitchStatement struct {
	Head Expr
	Body []Stmt
}

func (*SwitchStatement) stmtNode() {}

// CaseLabel is a "case expr:" label.
type CaseLabel struct {
	Expr Expr
}

func (*CaseLabel) stmtNode() {}

// DefaultLabel is a "default:" label.
type DefaultLabel struct{}

func (*DefaultLabel) stmtNode() {}

// Condition is a loop condition: a plain expression or an inline typed
// declaration with initializer.
type Condition interface {
	conditionNode()
}

// ConditionExpr is a plain expression condition.
type ConditionExpr struct {
	Expr Expr
}

func (*ConditionExpr) conditionNode() {}

// ConditionAssignment is a "type name = initializer" condition.
type ConditionAssignment struct {
	Type        FullySpecifiedType
	Name        string
	Initializer Initializer
}

func (*ConditionAssignment) conditionNode() {}

// WhileStatement is a while loop.
type WhileStatement struct {
	Cond Condition
	Body Stmt
}

func (*WhileStatement) stmtNode() {}

// DoWhileStatement is a do-while loop.
type DoWhileStatement struct {
	Body Stmt
	Cond Expr
}

func (*DoWhileStatement) stmtNode() {}

// ForInit is the first clause of a for statement.
type ForInit interface {
	forInitNode()
}

// ForInitExpr is an expression-statement init clause. Expr is nil when the
// clause is empty.
type ForInitExpr struct {
	Expr Expr
}

func (*ForInitExpr) forInitNode() {}

// ForInitDecl is a declaration init clause.
type ForInitDecl struct {
	Decl Declaration
}

func (*ForInitDecl) forInitNode() {}

// ForRest bundles the optional condition and post expression of a for
// statement.
type ForRest struct {
	Condition Condition
	Post      Expr
}

// ForStatement is a for loop.
type ForStatement struct {
	Init ForInit
	Rest ForRest
	Body Stmt
}

func (*ForStatement) stmtNode() {}

// BreakStatement is a break statement.
type BreakStatement struct{}

func (*BreakStatement) stmtNode() {}

// ContinueStatement is a continue statement.
type ContinueStatement struct{}

func (*ContinueStatement) stmtNode() {}

// DiscardStatement is a discard statement.
type DiscardStatement struct{}

func (*DiscardStatement) stmtNode() {}

// ReturnStatement is a return statement. Expr is nil for a bare return.
type ReturnStatement struct {
	Expr Expr
}

func (*ReturnStatement) stmtNode() {}

// Declarations

// FunctionPrototype is a function header: return type, name, parameters.
type FunctionPrototype struct {
	ReturnType FullySpecifiedType
	Name       string
	Parameters []FunctionParameter
}

func (*FunctionPrototype) externalDecl() {}
func (*FunctionPrototype) declNode()     {}
func (*FunctionPrototype) stmtNode()     {}

// FunctionParameter is a named or unnamed function parameter.
type FunctionParameter interface {
	functionParameter()
}

// NamedParameter is a parameter with a declarator.
type NamedParameter struct {
	Qualifier  *TypeQualifier
	Declarator FunctionParameterDeclarator
}

func (*NamedParameter) functionParameter() {}

// UnnamedParameter is a parameter given as a bare type.
type UnnamedParameter struct {
	Qualifier *TypeQualifier
	Type      TypeSpecifier
}

func (*UnnamedParameter) functionParameter() {}

// FunctionParameterDeclarator is the type/name/array part of a named
// parameter.
type FunctionParameterDeclarator struct {
	Type  TypeSpecifier
	Name  string
	Array *ArraySpecifier
}

// InitDeclaratorList is one typed head declaration plus same-type tail
// declarations, e.g. "float a = 1., b, c[2];".
type InitDeclaratorList struct {
	Head SingleDeclaration
	Tail []SingleDeclarationNoType
}

func (*InitDeclaratorList) externalDecl() {}
func (*InitDeclaratorList) declNode()     {}
func (*InitDeclaratorList) stmtNode()     {}

// SingleDeclaration is the head of an init declarator list. Name is ""
// when the declaration carries no declarator, e.g. "struct S { ... };".
type SingleDeclaration struct {
	Type        FullySpecifiedType
	Name        string
	Array       *ArraySpecifier
	Initializer Initializer
}

// SingleDeclarationNoType is a tail declarator of an init declarator list.
type SingleDeclarationNoType struct {
	Name        string
	Array       *ArraySpecifier
	Initializer Initializer
}

// Initializer is a single expression or a nested brace-aggregate list.
type Initializer interface {
	initializerNode()
}

// SimpleInitializer is an "= expr" initializer.
type SimpleInitializer struct {
	Expr Expr
}

func (*SimpleInitializer) initializerNode() {}

// ListInitializer is an "= { ... }" aggregate initializer.
type ListInitializer struct {
	Initializers []Initializer
}

func (*ListInitializer) initializerNode() {}

// PrecisionDeclaration is a "precision highp float;" declaration.
type PrecisionDeclaration struct {
	Qualifier PrecisionQualifier
	Type      TypeSpecifier
}

func (*PrecisionDeclaration) externalDecl() {}
func (*PrecisionDeclaration) declNode()     {}
func (*PrecisionDeclaration) stmtNode()     {}

// BlockDeclaration is an interface block: qualifier, block name, fields and
// an optional trailing arrayed instance identifier.
type BlockDeclaration struct {
	Qualifier  TypeQualifier
	Name       string
	Fields     []StructFieldSpecifier
	Identifier *ArrayedIdentifier
}

func (*BlockDeclaration) externalDecl() {}
func (*BlockDeclaration) declNode()     {}
func (*BlockDeclaration) stmtNode()     {}

// GlobalDeclaration is a qualifier applied to existing identifiers, e.g.
// "invariant gl_Position;".
type GlobalDeclaration struct {
	Qualifier   TypeQualifier
	Identifiers []string
}

func (*GlobalDeclaration) externalDecl() {}
func (*GlobalDeclaration) declNode()     {}
func (*GlobalDeclaration) stmtNode()     {}

// FunctionDefinition is a function prototype with a body.
type FunctionDefinition struct {
	Prototype FunctionPrototype
	Body      CompoundStatement
}

func (*FunctionDefinition) externalDecl() {}

// Preprocessor

// VersionProfile is the optional profile of a #version directive.
// ProfileNone marks an absent profile.
type VersionProfile uint8

const (
	ProfileNone VersionProfile = iota
	ProfileCore
	ProfileCompatibility
	ProfileES
)

// PreprocessorVersion is a #version directive.
type PreprocessorVersion struct {
	Version int
	Profile VersionProfile
}

func (*PreprocessorVersion) externalDecl() {}

// ExtensionName is the target of a #extension directive: the "all"
// wildcard or a specific extension name.
type ExtensionName interface {
	extensionName()
}

// ExtensionAll is the "all" wildcard.
type ExtensionAll struct{}

func (ExtensionAll) extensionName() {}

// ExtensionSpecific is a specific extension name.
type ExtensionSpecific string

func (ExtensionSpecific) extensionName() {}

// ExtensionBehavior is the optional behavior of a #extension directive.
// BehaviorNone marks an absent behavior.
type ExtensionBehavior uint8

const (
	BehaviorNone ExtensionBehavior = iota
	BehaviorRequire
	BehaviorEnable
	BehaviorWarn
	BehaviorDisable
)

// PreprocessorExtension is a #extension directive.
type PreprocessorExtension struct {
	Name     ExtensionName
	Behavior ExtensionBehavior
}

func (*PreprocessorExtension) externalDecl() {}
