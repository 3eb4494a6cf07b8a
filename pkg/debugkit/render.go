package debugkit

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
	"go.llib.dev/testcase/pp"
)

// Renderer makes the human-readable debug representation of a value.
// Both forms must be deterministic for the same value.
type Renderer interface {
	// Compact returns a single line representation.
	Compact(v any) string
	// Pretty returns a multi-line, indented representation.
	Pretty(v any) string
}

// PrettyGoStringer is implemented by types that want to control their pretty representation.
// Their compact representation can be controlled with fmt.GoStringer.
type PrettyGoStringer interface {
	PrettyGoString() string
}

// GoSyntax renders values with their Go syntax representation.
// Types that implement fmt.GoStringer or PrettyGoStringer are rendered with their own methods.
type GoSyntax struct{}

func (GoSyntax) Compact(v any) string {
	return fmt.Sprintf("%#v", v)
}

func (GoSyntax) Pretty(v any) string {
	if ps, ok := v.(PrettyGoStringer); ok {
		return ps.PrettyGoString()
	}
	return strings.TrimSuffix(pp.Format(v), "\n")
}

// Spew renders values with go-spew, which also shows the types of nested values.
type Spew struct{}

var spewConfig = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (Spew) Compact(v any) string {
	return spewConfig.Sprintf("%+v", v)
}

func (Spew) Pretty(v any) string {
	return strings.TrimSuffix(spewConfig.Sdump(v), "\n")
}

// KrPretty renders values with github.com/kr/pretty.
type KrPretty struct{}

func (KrPretty) Compact(v any) string {
	return fmt.Sprintf("%#v", pretty.Formatter(v))
}

func (KrPretty) Pretty(v any) string {
	return fmt.Sprintf("%# v", pretty.Formatter(v))
}
