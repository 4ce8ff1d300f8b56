package testutils

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// CheckText reports a unified diff when actual differs from expect.
func CheckText(t TestingT, expect, actual string) {
	t.Helper()

	if expect == actual {
		return
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expect),
		B:        difflib.SplitLines(actual),
		FromFile: "expect",
		ToFile:   "actual",
		Context:  5,
	}
	d, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatal(err)
	}
	t.Error(d)
}

// NormalizeSDL parses sdl and prints it back, so hand written fixtures share the formatter's layout.
func NormalizeSDL(t TestingT, sdl string) string {
	t.Helper()

	schemaDoc, gErr := parser.ParseSchema(&ast.Source{
		Name:  "expect.graphqls",
		Input: sdl,
	})
	if gErr != nil {
		t.Fatal(gErr)
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(schemaDoc)
	return buf.String()
}
