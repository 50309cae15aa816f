package glsl

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses GLSL tokens into a translation unit.
type Parser struct {
	tokens  []Token
	current int
}

// ParseError represents a parsing error.
type ParseError struct {
	Message string
	Token   Token
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse parses the tokens and returns a TranslationUnit. The first parse
// failure aborts: the caller gets either a complete tree or an error,
// never a partial tree.
func (p *Parser) Parse() (TranslationUnit, error) {
	var tu TranslationUnit

	for !p.isAtEnd() {
		decl, err := p.externalDeclaration()
		if err != nil {
			return nil, err
		}
		tu = append(tu, decl)
	}

	if len(tu) == 0 {
		return nil, &ParseError{Message: "empty translation unit", Token: p.peek()}
	}
	return tu, nil
}

// externalDeclaration parses one top-level item.
func (p *Parser) externalDeclaration() (ExternalDecl, *ParseError) {
	if p.check(TokenDirective) {
		return p.directive()
	}
	return p.declarationOrDefinition()
}

// directive parses a captured "#..." line.
func (p *Parser) directive() (ExternalDecl, *ParseError) {
	tok := p.advance()
	content := tok.Lexeme

	switch {
	case content == "version" || strings.HasPrefix(content, "version "):
		fields := strings.Fields(content)[1:]
		if len(fields) < 1 || len(fields) > 2 {
			return nil, &ParseError{Message: "malformed #version directive", Token: tok}
		}
		version, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid version number %q", fields[0]), Token: tok}
		}
		profile := ProfileNone
		if len(fields) == 2 {
			switch fields[1] {
			case "core":
				profile = ProfileCore
			case "compatibility":
				profile = ProfileCompatibility
			case "es":
				profile = ProfileES
			default:
				return nil, &ParseError{Message: fmt.Sprintf("invalid version profile %q", fields[1]), Token: tok}
			}
		}
		return &PreprocessorVersion{Version: version, Profile: profile}, nil

	case content == "extension" || strings.HasPrefix(content, "extension "):
		rest := strings.TrimSpace(content[len("extension"):])
		namePart := rest
		behaviorPart := ""
		if i := strings.IndexByte(rest, ':'); i >= 0 {
			namePart = strings.TrimSpace(rest[:i])
			behaviorPart = strings.TrimSpace(rest[i+1:])
		}
		if namePart == "" {
			return nil, &ParseError{Message: "malformed #extension directive", Token: tok}
		}
		var name ExtensionName
		if namePart == "all" {
			name = ExtensionAll{}
		} else {
			name = ExtensionSpecific(namePart)
		}
		behavior := BehaviorNone
		switch behaviorPart {
		case "":
		case "require":
			behavior = BehaviorRequire
		case "enable":
			behavior = BehaviorEnable
		case "warn":
			behavior = BehaviorWarn
		case "disable":
			behavior = BehaviorDisable
		default:
			return nil, &ParseError{Message: fmt.Sprintf("invalid extension behavior %q", behaviorPart), Token: tok}
		}
		return &PreprocessorExtension{Name: name, Behavior: behavior}, nil

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unsupported preprocessor directive %q", content), Token: tok}
	}
}

// declarationOrDefinition parses a declaration or a function definition.
func (p *Parser) declarationOrDefinition() (ExternalDecl, *ParseError) {
	if p.check(TokenPrecision) {
		return p.precisionDeclaration()
	}

	qualifier, err := p.maybeTypeQualifier()
	if err != nil {
		return nil, err
	}

	if qualifier != nil {
		// A qualifier not followed by a type is a global qualifier
		// declaration or an interface block.
		if p.check(TokenSemicolon) {
			p.advance()
			return &GlobalDeclaration{Qualifier: *qualifier}, nil
		}
		if p.check(TokenIdent) {
			if _, isType := LookupTypeKind(p.peek().Lexeme); !isType {
				switch p.peekNext().Kind {
				case TokenLeftBrace:
					return p.blockDeclaration(qualifier)
				case TokenComma, TokenSemicolon:
					return p.globalDeclaration(qualifier)
				}
			}
		}
	}

	ty, err := p.typeSpecifier()
	if err != nil {
		return nil, err
	}
	fst := FullySpecifiedType{Qualifier: qualifier, Type: ty}

	// Declaration without a declarator, e.g. "struct S { ... };".
	if p.match(TokenSemicolon) {
		return &InitDeclaratorList{Head: SingleDeclaration{Type: fst}}, nil
	}

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected declarator name", Token: p.peek()}
	}
	name := p.advance()

	if p.check(TokenLeftParen) {
		proto, err := p.functionPrototypeTail(fst, name.Lexeme)
		if err != nil {
			return nil, err
		}
		if p.check(TokenLeftBrace) {
			body, err := p.compoundStatement()
			if err != nil {
				return nil, err
			}
			return &FunctionDefinition{Prototype: *proto, Body: *body}, nil
		}
		if err := p.expectErr(TokenSemicolon); err != nil {
			return nil, err
		}
		return proto, nil
	}

	return p.initDeclaratorListTail(fst, name.Lexeme)
}

// declaration parses a declaration where a function definition is not
// allowed (statements and for-init clauses).
func (p *Parser) declaration() (Declaration, *ParseError) {
	ed, err := p.declarationOrDefinition()
	if err != nil {
		return nil, err
	}
	decl, ok := ed.(Declaration)
	if !ok {
		return nil, &ParseError{Message: "function definition not allowed here", Token: p.peek()}
	}
	return decl, nil
}

// precisionDeclaration parses "precision <qualifier> <type> ;".
func (p *Parser) precisionDeclaration() (*PrecisionDeclaration, *ParseError) {
	p.advance() // consume 'precision'

	var qual PrecisionQualifier
	switch p.peek().Kind {
	case TokenHighP:
		qual = PrecisionHigh
	case TokenMediumP:
		qual = PrecisionMedium
	case TokenLowP:
		qual = PrecisionLow
	default:
		return nil, &ParseError{Message: "expected precision qualifier", Token: p.peek()}
	}
	p.advance()

	ty, err := p.typeSpecifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &PrecisionDeclaration{Qualifier: qual, Type: ty}, nil
}

// blockDeclaration parses an interface block after its qualifier.
func (p *Parser) blockDeclaration(qualifier *TypeQualifier) (*BlockDeclaration, *ParseError) {
	name := p.advance()
	if err := p.expectErr(TokenLeftBrace); err != nil {
		return nil, err
	}

	var fields []StructFieldSpecifier
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		field, err := p.structFieldSpecifier()
		if err != nil {
			return nil, err
		}
		fields = append(fields, *field)
	}
	if err := p.expectErr(TokenRightBrace); err != nil {
		return nil, err
	}

	block := &BlockDeclaration{
		Qualifier: *qualifier,
		Name:      name.Lexeme,
		Fields:    fields,
	}

	if p.check(TokenIdent) {
		inst := p.advance()
		arr, err := p.maybeArraySpecifier()
		if err != nil {
			return nil, err
		}
		block.Identifier = &ArrayedIdentifier{Name: inst.Lexeme, Array: arr}
	}

	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return block, nil
}

// globalDeclaration parses "qualifier ident, ident, ... ;".
func (p *Parser) globalDeclaration(qualifier *TypeQualifier) (*GlobalDeclaration, *ParseError) {
	var idents []string
	for {
		if !p.check(TokenIdent) {
			return nil, &ParseError{Message: "expected identifier", Token: p.peek()}
		}
		idents = append(idents, p.advance().Lexeme)
		if !p.match(TokenComma) {
			break
		}
	}
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &GlobalDeclaration{Qualifier: *qualifier, Identifiers: idents}, nil
}

// functionPrototypeTail parses the parameter list of a prototype whose
// return type and name are already consumed.
func (p *Parser) functionPrototypeTail(returnType FullySpecifiedType, name string) (*FunctionPrototype, *ParseError) {
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	var params []FunctionParameter

	// "f(void)" declares an empty parameter list.
	if p.check(TokenIdent) && p.peek().Lexeme == "void" && p.peekNext().Kind == TokenRightParen {
		p.advance()
	}

	for !p.check(TokenRightParen) && !p.isAtEnd() {
		param, err := p.functionParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.match(TokenComma) {
			break
		}
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	return &FunctionPrototype{
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
	}, nil
}

// functionParameter parses one named or unnamed parameter.
func (p *Parser) functionParameter() (FunctionParameter, *ParseError) {
	qualifier, err := p.maybeTypeQualifier()
	if err != nil {
		return nil, err
	}

	ty, err := p.typeSpecifier()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenIdent) {
		return &UnnamedParameter{Qualifier: qualifier, Type: ty}, nil
	}

	name := p.advance()
	arr, err := p.maybeArraySpecifier()
	if err != nil {
		return nil, err
	}
	return &NamedParameter{
		Qualifier: qualifier,
		Declarator: FunctionParameterDeclarator{
			Type:  ty,
			Name:  name.Lexeme,
			Array: arr,
		},
	}, nil
}

// initDeclaratorListTail parses the declarators of an init declarator list
// whose type and first name are already consumed.
func (p *Parser) initDeclaratorListTail(ty FullySpecifiedType, firstName string) (*InitDeclaratorList, *ParseError) {
	head := SingleDeclaration{Type: ty, Name: firstName}

	arr, err := p.maybeArraySpecifier()
	if err != nil {
		return nil, err
	}
	head.Array = arr

	if p.match(TokenEqual) {
		init, err := p.initializer()
		if err != nil {
			return nil, err
		}
		head.Initializer = init
	}

	list := &InitDeclaratorList{Head: head}

	for p.match(TokenComma) {
		if !p.check(TokenIdent) {
			return nil, &ParseError{Message: "expected declarator name", Token: p.peek()}
		}
		decl := SingleDeclarationNoType{Name: p.advance().Lexeme}

		arr, err := p.maybeArraySpecifier()
		if err != nil {
			return nil, err
		}
		decl.Array = arr

		if p.match(TokenEqual) {
			init, err := p.initializer()
			if err != nil {
				return nil, err
			}
			decl.Initializer = init
		}
		list.Tail = append(list.Tail, decl)
	}

	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return list, nil
}

// initializer parses a simple or brace-aggregate initializer.
func (p *Parser) initializer() (Initializer, *ParseError) {
	if p.match(TokenLeftBrace) {
		var inits []Initializer
		for !p.check(TokenRightBrace) && !p.isAtEnd() {
			init, err := p.initializer()
			if err != nil {
				return nil, err
			}
			inits = append(inits, init)
			if !p.match(TokenComma) {
				break
			}
		}
		if err := p.expectErr(TokenRightBrace); err != nil {
			return nil, err
		}
		return &ListInitializer{Initializers: inits}, nil
	}

	expr, err := p.assignmentExpression()
	if err != nil {
		return nil, err
	}
	return &SimpleInitializer{Expr: expr}, nil
}

// Types and qualifiers

// typeSpecifier parses a type specifier with an optional array specifier.
func (p *Parser) typeSpecifier() (TypeSpecifier, *ParseError) {
	var nonArray TypeSpecifierNonArray

	switch {
	case p.check(TokenStruct):
		s, err := p.structSpecifier()
		if err != nil {
			return TypeSpecifier{}, err
		}
		nonArray = s
	case p.check(TokenIdent):
		name := p.advance().Lexeme
		if kind, ok := LookupTypeKind(name); ok {
			nonArray = kind
		} else {
			nonArray = TypeName(name)
		}
	default:
		return TypeSpecifier{}, &ParseError{
			Message: fmt.Sprintf("expected type specifier, got %s", p.peek().Kind),
			Token:   p.peek(),
		}
	}

	arr, err := p.maybeArraySpecifier()
	if err != nil {
		return TypeSpecifier{}, err
	}
	return TypeSpecifier{Type: nonArray, Array: arr}, nil
}

// structSpecifier parses "struct Name { fields }".
func (p *Parser) structSpecifier() (*StructSpecifier, *ParseError) {
	p.advance() // consume 'struct'

	if !p.check(TokenIdent) {
		return nil, &ParseError{Message: "expected struct name", Token: p.peek()}
	}
	name := p.advance()

	if err := p.expectErr(TokenLeftBrace); err != nil {
		return nil, err
	}

	var fields []StructFieldSpecifier
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		field, err := p.structFieldSpecifier()
		if err != nil {
			return nil, err
		}
		fields = append(fields, *field)
	}
	if err := p.expectErr(TokenRightBrace); err != nil {
		return nil, err
	}

	return &StructSpecifier{Name: name.Lexeme, Fields: fields}, nil
}

// structFieldSpecifier parses one field line of a struct or block.
func (p *Parser) structFieldSpecifier() (*StructFieldSpecifier, *ParseError) {
	qualifier, err := p.maybeTypeQualifier()
	if err != nil {
		return nil, err
	}

	ty, err := p.typeSpecifier()
	if err != nil {
		return nil, err
	}

	var idents []ArrayedIdentifier
	for {
		if !p.check(TokenIdent) {
			return nil, &ParseError{Message: "expected field name", Token: p.peek()}
		}
		name := p.advance()
		arr, err := p.maybeArraySpecifier()
		if err != nil {
			return nil, err
		}
		idents = append(idents, ArrayedIdentifier{Name: name.Lexeme, Array: arr})
		if !p.match(TokenComma) {
			break
		}
	}

	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &StructFieldSpecifier{Qualifier: qualifier, Type: ty, Identifiers: idents}, nil
}

// maybeArraySpecifier parses "[ ]" or "[ expr ]" if present.
func (p *Parser) maybeArraySpecifier() (*ArraySpecifier, *ParseError) {
	if !p.match(TokenLeftBracket) {
		return nil, nil
	}
	if p.match(TokenRightBracket) {
		return &ArraySpecifier{}, nil
	}
	size, err := p.conditionalExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightBracket); err != nil {
		return nil, err
	}
	return &ArraySpecifier{Size: size}, nil
}

// maybeTypeQualifier parses a run of qualifier specs, or nil if the next
// token starts none.
func (p *Parser) maybeTypeQualifier() (*TypeQualifier, *ParseError) {
	var specs []TypeQualifierSpec

	for {
		var spec TypeQualifierSpec

		switch p.peek().Kind {
		case TokenConst:
			spec = StorageConst
		case TokenInOut:
			spec = StorageInOut
		case TokenIn:
			spec = StorageIn
		case TokenOut:
			spec = StorageOut
		case TokenCentroid:
			spec = StorageCentroid
		case TokenPatch:
			spec = StoragePatch
		case TokenSample:
			spec = StorageSample
		case TokenUniform:
			spec = StorageUniform
		case TokenBuffer:
			spec = StorageBuffer
		case TokenShared:
			spec = StorageShared
		case TokenCoherent:
			spec = StorageCoherent
		case TokenVolatile:
			spec = StorageVolatile
		case TokenRestrict:
			spec = StorageRestrict
		case TokenReadOnly:
			spec = StorageReadOnly
		case TokenWriteOnly:
			spec = StorageWriteOnly
		case TokenHighP:
			spec = PrecisionHigh
		case TokenMediumP:
			spec = PrecisionMedium
		case TokenLowP:
			spec = PrecisionLow
		case TokenSmooth:
			spec = InterpSmooth
		case TokenFlat:
			spec = InterpFlat
		case TokenNoPerspective:
			spec = InterpNoPerspective
		case TokenInvariant:
			spec = Invariant{}
		case TokenPrecise:
			spec = Precise{}
		case TokenSubroutine:
			p.advance()
			sub, err := p.subroutineNames()
			if err != nil {
				return nil, err
			}
			specs = append(specs, sub)
			continue
		case TokenLayout:
			p.advance()
			layout, err := p.layoutQualifier()
			if err != nil {
				return nil, err
			}
			specs = append(specs, layout)
			continue
		default:
			if specs == nil {
				return nil, nil
			}
			return &TypeQualifier{Qualifiers: specs}, nil
		}

		p.advance()
		specs = append(specs, spec)
	}
}

// subroutineNames parses the optional "(T, U)" list after 'subroutine'.
func (p *Parser) subroutineNames() (Subroutine, *ParseError) {
	var names Subroutine
	if !p.match(TokenLeftParen) {
		return names, nil
	}
	for {
		if !p.check(TokenIdent) {
			return nil, &ParseError{Message: "expected subroutine type name", Token: p.peek()}
		}
		names = append(names, TypeName(p.advance().Lexeme))
		if !p.match(TokenComma) {
			break
		}
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}
	return names, nil
}

// layoutQualifier parses the "( ... )" list after 'layout'.
func (p *Parser) layoutQualifier() (*LayoutQualifier, *ParseError) {
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	var ids []LayoutQualifierSpec
	for {
		if p.match(TokenShared) {
			ids = append(ids, LayoutShared{})
		} else if p.check(TokenIdent) {
			name := p.advance()
			id := &LayoutIdent{Name: name.Lexeme}
			if p.match(TokenEqual) {
				value, err := p.conditionalExpression()
				if err != nil {
					return nil, err
				}
				id.Value = value
			}
			ids = append(ids, id)
		} else {
			return nil, &ParseError{Message: "expected layout qualifier id", Token: p.peek()}
		}
		if !p.match(TokenComma) {
			break
		}
	}

	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}
	return &LayoutQualifier{IDs: ids}, nil
}

// Statements

// compoundStatement parses "{ statements }".
func (p *Parser) compoundStatement() (*CompoundStatement, *ParseError) {
	if err := p.expectErr(TokenLeftBrace); err != nil {
		return nil, err
	}

	var stmts []Stmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expectErr(TokenRightBrace); err != nil {
		return nil, err
	}

	return &CompoundStatement{Statements: stmts}, nil
}

// statement parses one statement.
func (p *Parser) statement() (Stmt, *ParseError) {
	switch p.peek().Kind {
	case TokenLeftBrace:
		return p.compoundStatement()
	case TokenIf:
		return p.selectionStatement()
	case TokenSwitch:
		return p.switchStatement()
	case TokenCase:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expectErr(TokenColon); err != nil {
			return nil, err
		}
		return &CaseLabel{Expr: expr}, nil
	case TokenDefault:
		p.advance()
		if err := p.expectErr(TokenColon); err != nil {
			return nil, err
		}
		return &DefaultLabel{}, nil
	case TokenWhile:
		return p.whileStatement()
	case TokenDo:
		return p.doWhileStatement()
	case TokenFor:
		return p.forStatement()
	case TokenBreak:
		p.advance()
		if err := p.expectErr(TokenSemicolon); err != nil {
			return nil, err
		}
		return &BreakStatement{}, nil
	case TokenContinue:
		p.advance()
		if err := p.expectErr(TokenSemicolon); err != nil {
			return nil, err
		}
		return &ContinueStatement{}, nil
	case TokenDiscard:
		p.advance()
		if err := p.expectErr(TokenSemicolon); err != nil {
			return nil, err
		}
		return &DiscardStatement{}, nil
	case TokenReturn:
		p.advance()
		ret := &ReturnStatement{}
		if !p.check(TokenSemicolon) {
			expr, err := p.expression()
			if err != nil {
				return nil, err
			}
			ret.Expr = expr
		}
		if err := p.expectErr(TokenSemicolon); err != nil {
			return nil, err
		}
		return ret, nil
	case TokenSemicolon:
		p.advance()
		return &ExprStatement{}, nil
	case TokenPrecision:
		return p.precisionDeclaration()
	}

	if p.startsDeclaration() {
		return p.declaration()
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &ExprStatement{Expr: expr}, nil
}

// startsDeclaration reports whether the next tokens begin a declaration
// rather than an expression. A built-in or user type name followed by an
// identifier starts a declaration; a type name followed by '(' or '[' is a
// constructor expression.
func (p *Parser) startsDeclaration() bool {
	switch p.peek().Kind {
	case TokenConst, TokenIn, TokenOut, TokenInOut, TokenUniform, TokenBuffer,
		TokenShared, TokenCoherent, TokenVolatile, TokenRestrict,
		TokenReadOnly, TokenWriteOnly, TokenCentroid, TokenPatch, TokenSample,
		TokenSubroutine, TokenLayout, TokenInvariant, TokenPrecise,
		TokenHighP, TokenMediumP, TokenLowP,
		TokenSmooth, TokenFlat, TokenNoPerspective,
		TokenStruct:
		return true
	case TokenIdent:
		return p.peekNext().Kind == TokenIdent
	}
	return false
}

// selectionStatement parses "if (cond) stmt [else stmt]".
func (p *Parser) selectionStatement() (*SelectionStatement, *ParseError) {
	p.advance() // consume 'if'
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	sel := &SelectionStatement{Cond: cond, Then: then}
	if p.match(TokenElse) {
		els, err := p.statement()
		if err != nil {
			return nil, err
		}
		sel.Else = els
	}
	return sel, nil
}

// switchStatement parses "switch (head) { statements }". Case labels appear
// as ordinary statements in the body list.
func (p *Parser) switchStatement() (*SwitchStatement, *ParseError) {
	p.advance() // consume 'switch'
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}
	head, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenLeftBrace); err != nil {
		return nil, err
	}

	var body []Stmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if err := p.expectErr(TokenRightBrace); err != nil {
		return nil, err
	}

	return &SwitchStatement{Head: head, Body: body}, nil
}

// condition parses a loop condition: a plain expression or an inline typed
// declaration with initializer.
func (p *Parser) condition() (Condition, *ParseError) {
	if p.startsDeclaration() {
		qualifier, err := p.maybeTypeQualifier()
		if err != nil {
			return nil, err
		}
		ty, err := p.typeSpecifier()
		if err != nil {
			return nil, err
		}
		if !p.check(TokenIdent) {
			return nil, &ParseError{Message: "expected condition variable name", Token: p.peek()}
		}
		name := p.advance()
		if err := p.expectErr(TokenEqual); err != nil {
			return nil, err
		}
		init, err := p.initializer()
		if err != nil {
			return nil, err
		}
		return &ConditionAssignment{
			Type:        FullySpecifiedType{Qualifier: qualifier, Type: ty},
			Name:        name.Lexeme,
			Initializer: init,
		}, nil
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ConditionExpr{Expr: expr}, nil
}

// whileStatement parses "while (cond) stmt".
func (p *Parser) whileStatement() (*WhileStatement, *ParseError) {
	p.advance() // consume 'while'
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStatement{Cond: cond, Body: body}, nil
}

// doWhileStatement parses "do stmt while (expr) ;".
func (p *Parser) doWhileStatement() (*DoWhileStatement, *ParseError) {
	p.advance() // consume 'do'
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenWhile); err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	return &DoWhileStatement{Body: body, Cond: cond}, nil
}

// forStatement parses "for (init; cond; post) stmt".
func (p *Parser) forStatement() (*ForStatement, *ParseError) {
	p.advance() // consume 'for'
	if err := p.expectErr(TokenLeftParen); err != nil {
		return nil, err
	}

	var init ForInit
	switch {
	case p.match(TokenSemicolon):
		init = &ForInitExpr{}
	case p.startsDeclaration():
		decl, err := p.declaration()
		if err != nil {
			return nil, err
		}
		init = &ForInitDecl{Decl: decl}
	default:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expectErr(TokenSemicolon); err != nil {
			return nil, err
		}
		init = &ForInitExpr{Expr: expr}
	}

	var rest ForRest
	if !p.check(TokenSemicolon) {
		cond, err := p.condition()
		if err != nil {
			return nil, err
		}
		rest.Condition = cond
	}
	if err := p.expectErr(TokenSemicolon); err != nil {
		return nil, err
	}
	if !p.check(TokenRightParen) {
		post, err := p.expression()
		if err != nil {
			return nil, err
		}
		rest.Post = post
	}
	if err := p.expectErr(TokenRightParen); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ForStatement{Init: init, Rest: rest, Body: body}, nil
}

// Expressions

// expression parses a full expression including comma sequencing.
func (p *Parser) expression() (Expr, *ParseError) {
	left, err := p.assignmentExpression()
	if err != nil {
		return nil, err
	}

	for p.match(TokenComma) {
		right, err := p.assignmentExpression()
		if err != nil {
			return nil, err
		}
		left = &Comma{Left: left, Right: right}
	}

	return left, nil
}

// assignmentExpression parses right-associative assignments.
func (p *Parser) assignmentExpression() (Expr, *ParseError) {
	left, err := p.conditionalExpression()
	if err != nil {
		return nil, err
	}

	op, ok := assignOps[p.peek().Kind]
	if !ok {
		return left, nil
	}
	p.advance()

	value, err := p.assignmentExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{Target: left, Op: op, Value: value}, nil
}

var assignOps = map[TokenKind]AssignOp{
	TokenEqual:               AssignEqual,
	TokenStarEqual:           AssignMult,
	TokenSlashEqual:          AssignDiv,
	TokenPercentEqual:        AssignMod,
	TokenPlusEqual:           AssignAdd,
	TokenMinusEqual:          AssignSub,
	TokenLessLessEqual:       AssignLShift,
	TokenGreaterGreaterEqual: AssignRShift,
	TokenAmpEqual:            AssignAnd,
	TokenCaretEqual:          AssignXor,
	TokenPipeEqual:           AssignOr,
}

// conditionalExpression parses "?:" expressions.
func (p *Parser) conditionalExpression() (Expr, *ParseError) {
	cond, err := p.logicalOr()
	if err != nil {
		return nil, err
	}

	if !p.match(TokenQuestion) {
		return cond, nil
	}

	then, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectErr(TokenColon); err != nil {
		return nil, err
	}
	els, err := p.assignmentExpression()
	if err != nil {
		return nil, err
	}
	return &Ternary{Cond: cond, Then: then, Else: els}, nil
}

// binaryLevel parses one left-associative binary precedence level.
func (p *Parser) binaryLevel(ops map[TokenKind]BinaryOp, next func() (Expr, *ParseError)) (Expr, *ParseError) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			return left, nil
		}
		p.advance()

		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

var (
	logicalOrOps      = map[TokenKind]BinaryOp{TokenPipePipe: BinaryOr}
	logicalXorOps     = map[TokenKind]BinaryOp{TokenCaretCaret: BinaryXor}
	logicalAndOps     = map[TokenKind]BinaryOp{TokenAmpAmp: BinaryAnd}
	bitOrOps          = map[TokenKind]BinaryOp{TokenPipe: BinaryBitOr}
	bitXorOps         = map[TokenKind]BinaryOp{TokenCaret: BinaryBitXor}
	bitAndOps         = map[TokenKind]BinaryOp{TokenAmpersand: BinaryBitAnd}
	equalityOps       = map[TokenKind]BinaryOp{TokenEqualEqual: BinaryEqual, TokenBangEqual: BinaryNonEqual}
	relationalOps     = map[TokenKind]BinaryOp{TokenLess: BinaryLT, TokenGreater: BinaryGT, TokenLessEqual: BinaryLTE, TokenGreaterEqual: BinaryGTE}
	shiftOps          = map[TokenKind]BinaryOp{TokenLessLess: BinaryLShift, TokenGreaterGreater: BinaryRShift}
	additiveOps       = map[TokenKind]BinaryOp{TokenPlus: BinaryAdd, TokenMinus: BinarySub}
	multiplicativeOps = map[TokenKind]BinaryOp{TokenStar: BinaryMult, TokenSlash: BinaryDiv, TokenPercent: BinaryMod}
)

func (p *Parser) logicalOr() (Expr, *ParseError) {
	return p.binaryLevel(logicalOrOps, p.logicalXor)
}

func (p *Parser) logicalXor() (Expr, *ParseError) {
	return p.binaryLevel(logicalXorOps, p.logicalAnd)
}

func (p *Parser) logicalAnd() (Expr, *ParseError) {
	return p.binaryLevel(logicalAndOps, p.bitwiseOr)
}

func (p *Parser) bitwiseOr() (Expr, *ParseError) {
	return p.binaryLevel(bitOrOps, p.bitwiseXor)
}

func (p *Parser) bitwiseXor() (Expr, *ParseError) {
	return p.binaryLevel(bitXorOps, p.bitwiseAnd)
}

func (p *Parser) bitwiseAnd() (Expr, *ParseError) {
	return p.binaryLevel(bitAndOps, p.equality)
}

func (p *Parser) equality() (Expr, *ParseError) {
	return p.binaryLevel(equalityOps, p.comparison)
}

func (p *Parser) comparison() (Expr, *ParseError) {
	return p.binaryLevel(relationalOps, p.shift)
}

func (p *Parser) shift() (Expr, *ParseError) {
	return p.binaryLevel(shiftOps, p.additive)
}

func (p *Parser) additive() (Expr, *ParseError) {
	return p.binaryLevel(additiveOps, p.multiplicative)
}

func (p *Parser) multiplicative() (Expr, *ParseError) {
	return p.binaryLevel(multiplicativeOps, p.unary)
}

// unary parses prefix expressions.
func (p *Parser) unary() (Expr, *ParseError) {
	var op UnaryOp
	switch p.peek().Kind {
	case TokenPlusPlus:
		op = UnaryInc
	case TokenMinusMinus:
		op = UnaryDec
	case TokenPlus:
		op = UnaryAdd
	case TokenMinus:
		op = UnaryMinus
	case TokenBang:
		op = UnaryNot
	case TokenTilde:
		op = UnaryComplement
	default:
		return p.postfix()
	}
	p.advance()

	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &Unary{Op: op, Expr: operand}, nil
}

// postfix parses calls, subscripts, member access and post-inc/dec.
func (p *Parser) postfix() (Expr, *ParseError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(TokenLeftParen):
			var args []Expr
			for !p.check(TokenRightParen) && !p.isAtEnd() {
				arg, err := p.assignmentExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.match(TokenComma) {
					break
				}
			}
			if err := p.expectErr(TokenRightParen); err != nil {
				return nil, err
			}

			var fun FunIdentifier
			if v, ok := expr.(*Variable); ok {
				fun = FunName(v.Name)
			} else {
				fun = &FunExpr{Expr: expr}
			}
			expr = &FunCall{Fun: fun, Args: args}

		case p.match(TokenLeftBracket):
			spec := ArraySpecifier{}
			if !p.check(TokenRightBracket) {
				size, err := p.expression()
				if err != nil {
					return nil, err
				}
				spec.Size = size
			}
			if err := p.expectErr(TokenRightBracket); err != nil {
				return nil, err
			}
			expr = &Bracket{Expr: expr, Spec: spec}

		case p.match(TokenDot):
			if !p.check(TokenIdent) {
				return nil, &ParseError{Message: "expected member name", Token: p.peek()}
			}
			field := p.advance()
			expr = &Dot{Expr: expr, Field: field.Lexeme}

		case p.match(TokenPlusPlus):
			expr = &PostInc{Expr: expr}

		case p.match(TokenMinusMinus):
			expr = &PostDec{Expr: expr}

		default:
			return expr, nil
		}
	}
}

// primary parses literals, identifiers and parenthesized expressions.
func (p *Parser) primary() (Expr, *ParseError) {
	tok := p.peek()

	switch tok.Kind {
	case TokenIntLiteral:
		p.advance()
		v, err := strconv.ParseUint(tok.Lexeme, 0, 32)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid int literal %q", tok.Lexeme), Token: tok}
		}
		return &IntConst{Value: int32(uint32(v))}, nil

	case TokenUIntLiteral:
		p.advance()
		lexeme := strings.TrimRight(tok.Lexeme, "uU")
		v, err := strconv.ParseUint(lexeme, 0, 32)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid uint literal %q", tok.Lexeme), Token: tok}
		}
		return &UIntConst{Value: uint32(v)}, nil

	case TokenFloatLiteral:
		p.advance()
		lexeme := strings.TrimRight(tok.Lexeme, "fF")
		v, err := strconv.ParseFloat(lexeme, 32)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid float literal %q", tok.Lexeme), Token: tok}
		}
		return &FloatConst{Value: float32(v)}, nil

	case TokenDoubleLiteral:
		p.advance()
		lexeme := strings.TrimSuffix(strings.TrimSuffix(tok.Lexeme, "lf"), "LF")
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("invalid double literal %q", tok.Lexeme), Token: tok}
		}
		return &DoubleConst{Value: v}, nil

	case TokenBoolLiteral:
		p.advance()
		return &BoolConst{Value: tok.Lexeme == "true"}, nil

	case TokenIdent:
		p.advance()
		return &Variable{Name: tok.Lexeme}, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expectErr(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, &ParseError{
			Message: fmt.Sprintf("unexpected token %s in expression", tok.Kind),
			Token:   tok,
		}
	}
}

// Helper methods

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectErr(kind TokenKind) *ParseError {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return &ParseError{
		Message: fmt.Sprintf("expected %s, got %s", kind, p.peek().Kind),
		Token:   p.peek(),
	}
}
