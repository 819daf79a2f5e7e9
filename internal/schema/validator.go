// Package schema validates document metadata against an embedded CUE
// schema. Validation is advisory: a mistyped field produces a warning
// and the engine falls back to its default for that field, so analysis
// never aborts on bad metadata.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Warning describes one metadata field that failed validation.
type Warning struct {
	DocumentID string
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.DocumentID, w.Message)
}

// Validator checks metadata maps against the metadata schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	loaded bool
}

// NewValidator compiles the embedded schema. A compilation failure
// leaves the validator in a pass-through state rather than failing the
// caller; validation is best-effort by design.
func NewValidator() *Validator {
	v := &Validator{ctx: cuecontext.New()}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return v
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}
		schema := inst.LookupPath(cue.ParsePath("#Metadata"))
		if schema.Err() == nil {
			v.schema = schema
			v.loaded = true
			return v
		}
	}
	return v
}

// Validate checks one document's metadata, returning a warning per
// mistyped field. Nil or empty metadata validates trivially.
func (v *Validator) Validate(docID string, meta map[string]any) []Warning {
	if !v.loaded || len(meta) == 0 {
		return nil
	}

	data := v.ctx.Encode(meta)
	if data.Err() != nil {
		return []Warning{{DocumentID: docID, Message: fmt.Sprintf("metadata not encodable: %v", data.Err())}}
	}

	unified := v.schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var warnings []Warning
		for _, e := range cueerrors.Errors(err) {
			warnings = append(warnings, Warning{DocumentID: docID, Message: e.Error()})
		}
		return warnings
	}
	return nil
}
