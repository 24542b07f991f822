// Package main implements taggen, the capability code generator for branded
// types built on github.com/ecordell/tagged.
//
// taggen reads brand-type declarations from a package, validates the
// requested behaviors against the fixed capability catalogue, and emits one
// marker-method grant per behavior.
//
// Usage:
//
//	taggen [flags] <package-path> [<tag-type-name>...]
//
// Flags:
//
//	-output <path>
//	    Location where generated grants will be written (required)
//	-package <name>
//	    Name of package to use in output file (optional, inferred from output directory)
//
// With no tag type names, every annotated brand type in the package is
// processed.
//
// Example:
//
//	//go:generate go run github.com/ecordell/tagged/cmd/taggen -output=tags_gen.go . HostTag
//
// Declaration Format:
//
// A brand type is a struct whose blank field carries declaration lists in
// struct tags:
//
//	type HostTag struct {
//		_ struct{} `implement:"clone,equal,hash" transparent:"format,parse" capability:"inner,from"`
//	}
//
// Recognized tag keys:
//   - "implement" - behaviors of the wrapper itself (default, clone, copy,
//     equal, strict_equal, order, strict_order, hash, deref, add, sub, mul, div)
//   - "transparent" - pass-through behaviors (format, debug, parse, marshal,
//     unmarshal)
//   - "capability" - out-of-band capabilities (inner, from, map, cloned, ref)
//   - "permissive" - `permissive:"true"` grants the whole catalogue and must
//     be the only declaration on the type
//
// Unknown names and permissive conflicts abort the run before any output is
// written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/ast/inspector"
)

func main() {
	fs := flag.NewFlagSet("taggen", flag.ContinueOnError)
	outputPathFlag := fs.String(
		"output",
		"",
		"Location where generated grants will be written",
	)
	pkgNameFlag := fs.String(
		"package",
		"",
		"Name of package to use in output file",
	)

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err.Error())
	}

	if len(fs.Args()) < 1 {
		log.Fatal("must specify a package directory containing brand type declarations")
	}
	if *outputPathFlag == "" {
		log.Fatal("must specify -output")
	}

	pkgDir := fs.Arg(0)
	typeFilter := make(map[string]struct{}, len(fs.Args())-1)
	for _, typeName := range fs.Args()[1:] {
		typeFilter[typeName] = struct{}{}
	}

	packageName := outputPackageName(*pkgNameFlag, *outputPathFlag)

	if err := run(pkgDir, typeFilter, packageName, *outputPathFlag); err != nil {
		log.Fatal(err)
	}
}

func run(pkgDir string, typeFilter map[string]struct{}, packageName, outputPath string) error {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, pkgDir, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	var decls []*declaration
	var errs []error
	for _, pkg := range pkgs {
		specs := findBrandTypes(pkg, typeFilter)
		for _, ts := range specs {
			decl, err := parseDeclaration(ts)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			decls = append(decls, decl)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if len(decls) == 0 {
		return errors.New("no brand type declarations found")
	}

	// ParseDir iterates maps; pin the emission order.
	sort.Slice(decls, func(i, j int) bool { return decls[i].typeName < decls[j].typeName })

	fmt.Printf("Generating grants for %s...\n", declNames(decls))

	w, err := os.OpenFile(outputPath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("couldn't open %s for writing: %w", outputPath, err)
	}
	defer w.Close()

	return renderGrants(w, outputPath, packageName, decls)
}

// findBrandTypes returns the struct type definitions carrying a capability
// declaration. An empty filter selects every annotated type.
func findBrandTypes(pkg *ast.Package, filter map[string]struct{}) []*ast.TypeSpec {
	files := make([]*ast.File, 0, len(pkg.Files))
	for _, f := range pkg.Files {
		files = append(files, f)
	}

	found := make([]*ast.TypeSpec, 0)
	insp := inspector.New(files)
	insp.Preorder([]ast.Node{(*ast.TypeSpec)(nil)}, func(node ast.Node) {
		ts := node.(*ast.TypeSpec)
		if ts.Name == nil {
			return
		}
		if len(filter) > 0 {
			if _, ok := filter[ts.Name.Name]; !ok {
				return
			}
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return
		}
		if hasDeclarationTags(st) {
			found = append(found, ts)
		}
	})

	return found
}

// outputPackageName returns the explicit package name, or infers it from a
// Go file in the output directory.
func outputPackageName(flagValue, outputPath string) string {
	if flagValue != "" {
		return flagValue
	}
	outputDir := filepath.Dir(outputPath)
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, outputDir, nil, parser.PackageClauseOnly)
	if err != nil || len(pkgs) == 0 {
		return "main" // fallback
	}
	for name := range pkgs {
		return name
	}
	return "main"
}

func declNames(decls []*declaration) string {
	names := ""
	for i, d := range decls {
		if i > 0 {
			names += ", "
		}
		names += d.typeName
	}
	return names
}
