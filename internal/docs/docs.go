// Package docs registers the OpenAPI document of the HTTP API with swag,
// where gin-swagger reads it from.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Bookshop API",
	Description:      "Catalog, cart reconciliation, shipping quotes and orders for the bookshop.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
