package main

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func parseBrandType(t *testing.T, src string) *ast.TypeSpec {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "decl_test.go", "package decls\n\n"+src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var ts *ast.TypeSpec
	ast.Inspect(file, func(node ast.Node) bool {
		if spec, ok := node.(*ast.TypeSpec); ok {
			ts = spec
			return false
		}
		return true
	})
	if ts == nil {
		t.Fatal("no type spec in source")
	}
	return ts
}

func TestParseDeclarationLists(t *testing.T) {
	ts := parseBrandType(t, "type HostTag struct {\n"+
		"\t_ struct{} `implement:\"clone,equal\" transparent:\"format\" capability:\"inner\"`\n"+
		"}")

	decl, err := parseDeclaration(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decl.permissive {
		t.Error("declaration should not be permissive")
	}

	want := []string{"CanClone", "CanEqual", "CanFormat", "CanInner"}
	if len(decl.methods) != len(want) {
		t.Errorf("got %d grants, want %d: %v", len(decl.methods), len(want), decl.methods)
	}
	for _, m := range want {
		if !decl.methods[m] {
			t.Errorf("missing grant %s", m)
		}
	}
}

func TestParseDeclarationDuplicatesAreNoOps(t *testing.T) {
	ts := parseBrandType(t, "type HostTag struct {\n"+
		"\t_ struct{} `implement:\"clone,clone,clone\"`\n"+
		"}")

	decl, err := parseDeclaration(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decl.methods) != 1 || !decl.methods["CanClone"] {
		t.Errorf("duplicate names should collapse to one grant, got %v", decl.methods)
	}
}

func TestParseDeclarationPermissive(t *testing.T) {
	ts := parseBrandType(t, "type PortTag struct {\n"+
		"\t_ struct{} `permissive:\"true\"`\n"+
		"}")

	decl, err := parseDeclaration(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decl.permissive {
		t.Error("declaration should be permissive")
	}
}

func TestParseDeclarationUnknownName(t *testing.T) {
	ts := parseBrandType(t, "type BadTag struct {\n"+
		"\t_ struct{} `capability:\"teleport\"`\n"+
		"}")

	_, err := parseDeclaration(ts)
	if err == nil {
		t.Fatal("expected an error")
	}

	var unknown unknownNameError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected unknownNameError, got %T: %v", err, err)
	}
	if unknown.Name != "teleport" || unknown.List != listCapability || unknown.TypeName != "BadTag" {
		t.Errorf("error lacks context: %+v", unknown)
	}
	if !strings.Contains(err.Error(), `unknown name "teleport" in capability declaration on BadTag`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParseDeclarationReportsEveryUnknownName(t *testing.T) {
	ts := parseBrandType(t, "type BadTag struct {\n"+
		"\t_ struct{} `implement:\"cloneable,equal\" transparent:\"pretty\"`\n"+
		"}")

	_, err := parseDeclaration(ts)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{`unknown name "cloneable"`, `unknown name "pretty"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error %q missing %q", err, want)
		}
	}
}

func TestParseDeclarationPermissiveConflict(t *testing.T) {
	ts := parseBrandType(t, "type ConflictTag struct {\n"+
		"\t_ struct{} `permissive:\"true\" implement:\"clone\"`\n"+
		"}")

	_, err := parseDeclaration(ts)
	if err == nil {
		t.Fatal("expected an error")
	}

	var conflict conflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflictError, got %T: %v", err, err)
	}
	if conflict.TypeName != "ConflictTag" {
		t.Errorf("error lacks type name: %+v", conflict)
	}
}

func TestParseDeclarationPermissiveBadValue(t *testing.T) {
	ts := parseBrandType(t, "type PortTag struct {\n"+
		"\t_ struct{} `permissive:\"maybe\"`\n"+
		"}")

	_, err := parseDeclaration(ts)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), `unknown name "maybe" in permissive declaration on PortTag`) {
		t.Errorf("unexpected message: %v", err)
	}
}
