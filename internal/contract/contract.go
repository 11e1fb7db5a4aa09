// Package contract embeds the OpenAPI description of the council backend
// and exposes it for inspection. The doctor command uses it to report which
// endpoints the binary expects, and tests assert the client's paths stay in
// step with the document.
package contract

import (
	"context"
	_ "embed"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/airiskcouncil/arcctl/internal/errors"
)

//go:embed openapi.yaml
var raw []byte

// Load parses and validates the embedded OpenAPI document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeContractInvalid, "cannot parse embedded API contract", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeContractInvalid, "embedded API contract is invalid", err)
	}
	return doc, nil
}

// Endpoint is one operation the client may call.
type Endpoint struct {
	Method      string
	Path        string
	OperationID string
}

// Endpoints lists every operation in the contract, sorted by path then
// method.
func Endpoints(doc *openapi3.T) []Endpoint {
	var out []Endpoint
	if doc.Paths == nil {
		return out
	}
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			out = append(out, Endpoint{
				Method:      strings.ToUpper(method),
				Path:        path,
				OperationID: op.OperationID,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// HasOperation reports whether the contract documents the given method and
// path template.
func HasOperation(doc *openapi3.T, method, path string) bool {
	if doc.Paths == nil {
		return false
	}
	item := doc.Paths.Find(path)
	if item == nil {
		return false
	}
	_, ok := item.Operations()[strings.ToUpper(method)]
	return ok
}
