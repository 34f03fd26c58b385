// Package view holds helpers for rendering component output.
package view

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"text/template"
)

// ImplicitName is the context key that always carries the bound value.
const ImplicitName = "implicit"

// Var binds a value to a local name inside a template fragment. The fragment
// sees the value as .implicit and under the chosen name, and is rendered
// again only when the bound value changes.
type Var struct {
	name string
	tmpl *template.Template

	mu       sync.Mutex
	value    any
	rendered bool
}

func NewVar(name string, tmpl *template.Template) *Var {
	return &Var{name: name, tmpl: tmpl}
}

// Set binds value and renders the fragment to w when the value differs from
// the last bound one. It reports whether the fragment was rendered.
func (v *Var) Set(w io.Writer, value any) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rendered && reflect.DeepEqual(v.value, value) {
		return false, nil
	}

	if err := v.tmpl.Execute(w, v.context(value)); err != nil {
		return false, fmt.Errorf("render %s: %w", v.name, err)
	}

	v.value = value
	v.rendered = true
	return true, nil
}

// Reset drops the bound value so the next Set renders unconditionally.
func (v *Var) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = nil
	v.rendered = false
}

// Value returns the currently bound value.
func (v *Var) Value() any {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

func (v *Var) context(value any) map[string]any {
	return map[string]any{
		ImplicitName: value,
		v.name:       value,
	}
}
