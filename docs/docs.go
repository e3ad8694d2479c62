// Package docs embeds the OpenAPI description served by the HTTP layer.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte
