package main

import (
	"io"

	"github.com/dave/jennifer/jen"
)

// renderGrants emits the marker-method grants for every declaration into a
// single generated file. Grants follow the fixed catalogue order, so output
// is deterministic regardless of how a declaration spelled its lists.
func renderGrants(w io.Writer, outputPath, packageName string, decls []*declaration) error {
	buf := jen.NewFilePathName(outputPath, packageName)
	buf.PackageComment("Code generated by github.com/ecordell/tagged/cmd/taggen. DO NOT EDIT.")

	for _, decl := range decls {
		buf.Comment(decl.comment())
		for _, g := range catalog {
			if !decl.permissive && !decl.methods[g.method] {
				continue
			}
			buf.Func().Params(jen.Id(decl.typeName)).Id(g.method).Params().Block()
		}
	}

	return buf.Render(w)
}

func (d *declaration) comment() string {
	if d.permissive {
		return d.typeName + " grants the full capability catalogue."
	}
	return d.typeName + " capability grants."
}
