// Package schemas embeds the JSON Schema artifacts shipped with tcshows.
package schemas

import (
	_ "embed"

	schemaval "github.com/s0rta/tcshows/internal/schemas"
)

// ShowsSchema is the JSON Schema the output document must satisfy. The file
// also lives on disk for external consumers of the document.
//
//go:embed shows.schema.json
var ShowsSchema string

// ValidateDocument checks serialized output-document JSON against the shows
// schema.
func ValidateDocument(jsonContent string) error {
	return schemaval.ValidateJSONString(ShowsSchema, jsonContent)
}
