// Copyright 2025 bitbuf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// Width describes one supported fixed-width integer type.
type Width struct {
	Name     string // Go type name, e.g. "uint8" or "Int128"
	Bits     int
	Signed   bool
	Wide     bool   // two-word struct type rather than a native integer
	Unsigned string // unsigned counterpart, used to force logical shifts
}

// widths lists every supported type, unsigned first, narrowest to widest.
// The generated type switches keep this order.
var widths = []Width{
	{Name: "uint8", Bits: 8, Unsigned: "uint8"},
	{Name: "uint16", Bits: 16, Unsigned: "uint16"},
	{Name: "uint32", Bits: 32, Unsigned: "uint32"},
	{Name: "uint64", Bits: 64, Unsigned: "uint64"},
	{Name: "Uint128", Bits: 128, Wide: true, Unsigned: "Uint128"},
	{Name: "int8", Bits: 8, Signed: true, Unsigned: "uint8"},
	{Name: "int16", Bits: 16, Signed: true, Unsigned: "uint16"},
	{Name: "int32", Bits: 32, Signed: true, Unsigned: "uint32"},
	{Name: "int64", Bits: 64, Signed: true, Unsigned: "uint64"},
	{Name: "Int128", Bits: 128, Signed: true, Wide: true, Unsigned: "Uint128"},
}

const opsTemplate = `// Code generated by bitgen. DO NOT EDIT.

package {{.Package}}

import "math/bits"

// onesCount returns the number of set bits in v.
func onesCount[T Bits](v T) int {
	switch v := any(v).(type) {
{{- range .Widths}}
	case {{.Name}}:
{{- if and .Wide .Signed}}
		return onesCount128(int128AsUint(v))
{{- else if .Wide}}
		return onesCount128(v)
{{- else if .Signed}}
		return bits.OnesCount{{.Bits}}({{.Unsigned}}(v))
{{- else}}
		return bits.OnesCount{{.Bits}}(v)
{{- end}}
{{- end}}
	default:
		return 0
	}
}

// shiftLeft shifts v left by n bits. Bits shifted past the top of the
// width are discarded.
func shiftLeft[T Bits](v T, n uint) T {
	switch v := any(v).(type) {
{{- range .Widths}}
	case {{.Name}}:
{{- if and .Wide .Signed}}
		return any(uint128AsInt(shiftLeft128(int128AsUint(v), n))).(T)
{{- else if .Wide}}
		return any(shiftLeft128(v, n)).(T)
{{- else}}
		return any(v << n).(T)
{{- end}}
{{- end}}
	default:
		var zero T
		return zero
	}
}

// shiftRightLogical shifts v right by n bits, filling vacated high bits
// with zero regardless of signedness. n may equal the full width.
func shiftRightLogical[T Bits](v T, n uint) T {
	switch v := any(v).(type) {
{{- range .Widths}}
	case {{.Name}}:
{{- if and .Wide .Signed}}
		return any(uint128AsInt(shiftRight128(int128AsUint(v), n))).(T)
{{- else if .Wide}}
		return any(shiftRight128(v, n)).(T)
{{- else if .Signed}}
		return any({{.Name}}({{.Unsigned}}(v) >> n)).(T)
{{- else}}
		return any(v >> n).(T)
{{- end}}
{{- end}}
	default:
		var zero T
		return zero
	}
}

// lowByte returns the low 8 bits of v.
func lowByte[T Bits](v T) uint8 {
	switch v := any(v).(type) {
{{- range .Widths}}
	case {{.Name}}:
{{- if .Wide}}
		return uint8(v.Lo)
{{- else if eq .Name "uint8"}}
		return v
{{- else}}
		return uint8(v)
{{- end}}
{{- end}}
	default:
		return 0
	}
}

// orByte returns v with the bits of b ORed into its low 8 bits.
func orByte[T Bits](v T, b uint8) T {
	switch v := any(v).(type) {
{{- range .Widths}}
	case {{.Name}}:
{{- if .Wide}}
		return any({{.Name}}{Hi: v.Hi, Lo: v.Lo | uint64(b)}).(T)
{{- else if eq .Name "uint8"}}
		return any(v | b).(T)
{{- else}}
		return any(v | {{.Name}}(b)).(T)
{{- end}}
{{- end}}
	default:
		var zero T
		return zero
	}
}
`

// Generate renders the per-width helper file for the given package name
// and returns it formatted.
func Generate(pkg string) ([]byte, error) {
	tmpl, err := template.New("ops").Parse(opsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Widths  []Width
	}{Package: pkg, Widths: widths}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	formatted, err := imports.Process("z_ops.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}
