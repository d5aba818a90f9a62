// Package docs holds the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange email and password for a bearer token",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/admin/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login with form credentials keyed by user name",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/inventory/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "List catalog items visible to the caller",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/orders/place-order": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order against a unit's stock",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Insufficient stock or invalid lines"},
                    "404": {"description": "Unit or item not found"}
                }
            }
        },
        "/notifications/report-low-inventory": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "File a low-stock report for an item in the caller's unit",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Item is not below the threshold"}
                }
            }
        },
        "/feedback/create-feeback": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feedback"],
                "summary": "Submit customer feedback for a unit",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Unit not found"}
                }
            }
        },
        "/financial-reports/sales-report": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Total sales and order count under the caller's scope",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MaxHelp API",
	Description:      "Role-based inventory, ordering and feedback backend for business units.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
