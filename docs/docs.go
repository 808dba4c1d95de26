// Package docs registers the generated Swagger spec for the signup API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{escape .Title}}",
        "version": "{{escape .Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Service health with per-dependency sub-checks",
                "responses": {
                    "200": {"description": "healthy"},
                    "503": {"description": "one or more dependencies failed"}
                }
            }
        },
        "/signups": {
            "get": {
                "produces": ["application/json"],
                "summary": "List signups",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Register a signup",
                "responses": {
                    "201": {"description": "created"},
                    "400": {"description": "invalid input"},
                    "409": {"description": "email already registered"}
                }
            }
        },
        "/signups/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get a signup by ID",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "not found"}
                }
            }
        },
        "/worker": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Process a queue-forwarded task message",
                "responses": {
                    "200": {"description": "task processed"},
                    "400": {"description": "malformed message"},
                    "500": {"description": "task failed"}
                }
            }
        },
        "/scheduled": {
            "post": {
                "produces": ["application/json"],
                "summary": "Run a scheduled task named by X-Aws-Sqsd-Taskname",
                "responses": {
                    "200": {"description": "task processed"},
                    "500": {"description": "task failed"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Signup API",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
