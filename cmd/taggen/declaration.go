package main

import (
	"errors"
	"fmt"
	"go/ast"
	"strings"

	"github.com/fatih/structtag"
)

// declaration is the parsed, validated capability declaration of one brand
// type: either the permissive flag, or a set of marker methods to grant.
type declaration struct {
	typeName   string
	permissive bool
	methods    map[string]bool
}

// unknownNameError reports a declaration name that is not in the catalogue.
type unknownNameError struct {
	Name     string
	List     string
	TypeName string
}

func (e unknownNameError) Error() string {
	return fmt.Sprintf("unknown name %q in %s declaration on %s", e.Name, e.List, e.TypeName)
}

// conflictError reports the permissive flag combined with any other
// declaration.
type conflictError struct {
	TypeName string
}

func (e conflictError) Error() string {
	return fmt.Sprintf("permissive must be the only declaration on %s", e.TypeName)
}

var declarationKeys = []string{listImplement, listTransparent, listCapability, keyPermissive}

// hasDeclarationTags reports whether any field of the struct carries a
// recognized declaration tag key.
func hasDeclarationTags(st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		tags, err := fieldTags(field)
		if err != nil {
			continue
		}
		for _, key := range declarationKeys {
			if _, err := tags.Get(key); err == nil {
				return true
			}
		}
	}
	return false
}

// parseDeclaration reads every declaration tag on the brand type and
// resolves the requested names against the catalogue. Duplicate names are
// harmless; the grant set is emitted once per marker. All invalid entries
// are reported together, and a type with any invalid entry yields no
// grants.
func parseDeclaration(ts *ast.TypeSpec) (*declaration, error) {
	st := ts.Type.(*ast.StructType)
	decl := &declaration{
		typeName: ts.Name.Name,
		methods:  make(map[string]bool),
	}

	listCount := 0
	var errs []error
	for _, field := range st.Fields.List {
		tags, err := fieldTags(field)
		if err != nil {
			continue
		}

		for _, list := range []string{listImplement, listTransparent, listCapability} {
			tag, err := tags.Get(list)
			if err != nil {
				continue
			}
			listCount++
			for _, name := range tagNames(tag) {
				g, ok := lookupGrant(list, name)
				if !ok {
					errs = append(errs, unknownNameError{Name: name, List: list, TypeName: decl.typeName})
					continue
				}
				decl.methods[g.method] = true
			}
		}

		if tag, err := tags.Get(keyPermissive); err == nil {
			decl.permissive = true
			if v := strings.Join(tagNames(tag), ","); v != "true" {
				errs = append(errs, unknownNameError{Name: v, List: keyPermissive, TypeName: decl.typeName})
			}
		}
	}

	if decl.permissive && listCount > 0 {
		// No grants are emitted for a conflicted brand type.
		return nil, conflictError{TypeName: decl.typeName}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return decl, nil
}

// fieldTags parses a field's raw struct tag.
func fieldTags(field *ast.Field) (*structtag.Tags, error) {
	if field.Tag == nil {
		return nil, errors.New("missing tag")
	}
	// field.Tag.Value is like `implement:"clone,equal"` (includes backticks)
	return structtag.Parse(strings.Trim(field.Tag.Value, "`"))
}

// tagNames returns every comma-separated name of a tag value. structtag
// splits the value into a leading name and trailing options; a declaration
// list treats them uniformly.
func tagNames(tag *structtag.Tag) []string {
	return append([]string{tag.Name}, tag.Options...)
}
