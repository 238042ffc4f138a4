// Package mason builds hypermedia documents in the Mason media type.
//
// A Document is an ordered JSON object: plain fields keep their insertion
// order and the reserved "@namespaces", "@controls" and "@error" sections
// are serialized at the position they were first added.
package mason

import (
	"bytes"
	"encoding/json"

	"golang.org/x/exp/slices"
)

// ContentType is the media type for Mason documents.
const ContentType = "application/vnd.mason+json"

// Reserved document keys.
const (
	keyNamespaces = "@namespaces"
	keyControls   = "@controls"
	keyError      = "@error"
)

// Control describes one legal state transition from the resource the
// document represents.
type Control struct {
	Href     string `json:"href"`
	Method   string `json:"method,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Title    string `json:"title,omitempty"`
	Schema   any    `json:"schema,omitempty"`
}

// Namespace maps a control name prefix to the URI defining its relations.
type Namespace struct {
	Name string `json:"name"`
}

// Error is the body of the reserved "@error" section.
type Error struct {
	Message  string   `json:"@message"`
	Messages []string `json:"@messages"`
}

type field struct {
	key   string
	value any
}

// Document is a single Mason response body. The zero value is not usable,
// use New.
type Document struct {
	fields []field
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// set stores the value under the key, keeping the position of an existing
// key and appending unknown keys.
func (d *Document) set(key string, value any) {
	i := slices.IndexFunc(d.fields, func(f field) bool { return f.key == key })
	if i >= 0 {
		d.fields[i].value = value
		return
	}

	d.fields = append(d.fields, field{key: key, value: value})
}

// Set adds a plain field to the document. Setting an existing field
// replaces its value in place.
func (d *Document) Set(key string, value any) {
	d.set(key, value)
}

// AddNamespace registers a control name prefix with the URI defining its
// link relations.
func (d *Document) AddNamespace(prefix, uri string) {
	namespaces, _ := d.lookup(keyNamespaces).(map[string]Namespace)
	if namespaces == nil {
		namespaces = make(map[string]Namespace)
		d.set(keyNamespaces, namespaces)
	}

	namespaces[prefix] = Namespace{Name: uri}
}

// AddControl attaches a hypermedia control to the document. Adding a
// control with an existing name replaces it, last write wins.
func (d *Document) AddControl(name string, control Control) {
	controls, _ := d.lookup(keyControls).(map[string]Control)
	if controls == nil {
		controls = make(map[string]Control)
		d.set(keyControls, controls)
	}

	controls[name] = control
}

// AddError turns the document into an error document. Error documents carry
// no plain fields, only the "@error" section and controls.
func (d *Document) AddError(title string, details ...string) {
	if details == nil {
		details = []string{}
	}

	d.set(keyError, Error{Message: title, Messages: details})
}

func (d *Document) lookup(key string) any {
	i := slices.IndexFunc(d.fields, func(f field) bool { return f.key == key })
	if i < 0 {
		return nil
	}

	return d.fields[i].value
}

// MarshalJSON implements the json.Marshaler interface.
// Fields are written in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
