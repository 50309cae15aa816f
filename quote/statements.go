// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package quote

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glslquote/glsl"
)

func (w *writer) writeStmt(stmt glsl.Stmt) {
	switch s := stmt.(type) {
	case *glsl.CompoundStatement:
		w.raw("&")
		w.writeCompoundStatement(*s)

	case *glsl.ExprStatement:
		if s.Expr == nil {
			w.raw("&glsl.ExprStatement{}")
			return
		}
		w.open("&glsl.ExprStatement")
		w.fieldStart("Expr")
		w.writeExpr(s.Expr)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.SelectionStatement:
		w.open("&glsl.SelectionStatement")
		w.fieldStart("Cond")
		w.writeExpr(s.Cond)
		w.fieldEnd()
		w.fieldStart("Then")
		w.writeStmt(s.Then)
		w.fieldEnd()
		if s.Else != nil {
			w.fieldStart("Else")
			w.writeStmt(s.Else)
			w.fieldEnd()
		}
		w.closeBrace()

	case *glsl.SwitchStatement:
		w.open("&glsl.SwitchStatement")
		w.fieldStart("Head")
		w.writeExpr(s.Head)
		w.fieldEnd()
		if len(s.Body) > 0 {
			w.fieldStart("Body")
			w.writeStmtList(s.Body)
			w.fieldEnd()
		}
		w.closeBrace()

	case *glsl.CaseLabel:
		w.open("&glsl.CaseLabel")
		w.fieldStart("Expr")
		w.writeExpr(s.Expr)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.DefaultLabel:
		w.raw("&glsl.DefaultLabel{}")

	case *glsl.WhileStatement:
		w.open("&glsl.WhileStatement")
		w.fieldStart("Cond")
		w.writeCondition(s.Cond)
		w.fieldEnd()
		w.fieldStart("Body")
		w.writeStmt(s.Body)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.DoWhileStatement:
		w.open("&glsl.DoWhileStatement")
		w.fieldStart("Body")
		w.writeStmt(s.Body)
		w.fieldEnd()
		w.fieldStart("Cond")
		w.writeExpr(s.Cond)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.ForStatement:
		w.open("&glsl.ForStatement")
		w.fieldStart("Init")
		w.writeForInit(s.Init)
		w.fieldEnd()
		if s.Rest.Condition != nil || s.Rest.Post != nil {
			w.fieldStart("Rest")
			w.writeForRest(s.Rest)
			w.fieldEnd()
		}
		w.fieldStart("Body")
		w.writeStmt(s.Body)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.BreakStatement:
		w.raw("&glsl.BreakStatement{}")

	case *glsl.ContinueStatement:
		w.raw("&glsl.ContinueStatement{}")

	case *glsl.DiscardStatement:
		w.raw("&glsl.DiscardStatement{}")

	case *glsl.ReturnStatement:
		if s.Expr == nil {
			w.raw("&glsl.ReturnStatement{}")
			return
		}
		w.open("&glsl.ReturnStatement")
		w.fieldStart("Expr")
		w.writeExpr(s.Expr)
		w.fieldEnd()
		w.closeBrace()

	case glsl.Declaration:
		w.writeDeclaration(s)

	default:
		panic(fmt.Sprintf("quote: unknown statement %T", stmt))
	}
}

func (w *writer) writeCompoundStatement(s glsl.CompoundStatement) {
	if len(s.Statements) == 0 {
		w.raw("glsl.CompoundStatement{}")
		return
	}
	w.open("glsl.CompoundStatement")
	w.fieldStart("Statements")
	w.writeStmtList(s.Statements)
	w.fieldEnd()
	w.closeBrace()
}

func (w *writer) writeStmtList(stmts []glsl.Stmt) {
	w.open("[]glsl.Stmt")
	for _, stmt := range stmts {
		w.ind()
		w.writeStmt(stmt)
		w.raw(",\n")
	}
	w.closeBrace()
}

func (w *writer) writeCondition(cond glsl.Condition) {
	switch c := cond.(type) {
	case *glsl.ConditionExpr:
		w.open("&glsl.ConditionExpr")
		w.fieldStart("Expr")
		w.writeExpr(c.Expr)
		w.fieldEnd()
		w.closeBrace()
	case *glsl.ConditionAssignment:
		w.open("&glsl.ConditionAssignment")
		w.fieldStart("Type")
		w.writeFullySpecifiedType(c.Type)
		w.fieldEnd()
		w.fieldString("Name", c.Name)
		w.fieldStart("Initializer")
		w.writeInitializer(c.Initializer)
		w.fieldEnd()
		w.closeBrace()
	default:
		panic(fmt.Sprintf("quote: unknown condition %T", cond))
	}
}

func (w *writer) writeForInit(init glsl.ForInit) {
	switch i := init.(type) {
	case *glsl.ForInitExpr:
		if i.Expr == nil {
			w.raw("&glsl.ForInitExpr{}")
			return
		}
		w.open("&glsl.ForInitExpr")
		w.fieldStart("Expr")
		w.writeExpr(i.Expr)
		w.fieldEnd()
		w.closeBrace()
	case *glsl.ForInitDecl:
		w.open("&glsl.ForInitDecl")
		w.fieldStart("Decl")
		w.writeDeclaration(i.Decl)
		w.fieldEnd()
		w.closeBrace()
	default:
		panic(fmt.Sprintf("quote: unknown for-init %T", init))
	}
}

func (w *writer) writeForRest(rest glsl.ForRest) {
	w.open("glsl.ForRest")
	if rest.Condition != nil {
		w.fieldStart("Condition")
		w.writeCondition(rest.Condition)
		w.fieldEnd()
	}
	if rest.Post != nil {
		w.fieldStart("Post")
		w.writeExpr(rest.Post)
		w.fieldEnd()
	}
	w.closeBrace()
}

func (w *writer) writeInitializer(init glsl.Initializer) {
	switch i := init.(type) {
	case *glsl.SimpleInitializer:
		w.open("&glsl.SimpleInitializer")
		w.fieldStart("Expr")
		w.writeExpr(i.Expr)
		w.fieldEnd()
		w.closeBrace()
	case *glsl.ListInitializer:
		if len(i.Initializers) == 0 {
			w.raw("&glsl.ListInitializer{}")
			return
		}
		w.open("&glsl.ListInitializer")
		w.fieldStart("Initializers")
		w.open("[]glsl.Initializer")
		for _, nested := range i.Initializers {
			w.ind()
			w.writeInitializer(nested)
			w.raw(",\n")
		}
		w.closeBrace()
		w.fieldEnd()
		w.closeBrace()
	default:
		panic(fmt.Sprintf("quote: unknown initializer %T", init))
	}
}

// writeIdentifiers writes a []string field value on one line.
func (w *writer) writeIdentifiers(idents []string) {
	w.raw("[]string{")
	for i, id := range idents {
		if i > 0 {
			w.raw(", ")
		}
		w.raw(strconv.Quote(id))
	}
	w.raw("}")
}
