package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.one-green.io/support",
            "email": "support@one-green.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Get the UI state of the session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.UIState"}}
                }
            }
        },
        "/api/v1/endpoint": {
            "get": {
                "description": "Returns the endpoint of the test or active workflow and the missing configuration keys",
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Resolve the webhook endpoint",
                "parameters": [
                    {"type": "boolean", "description": "Use the active workflow", "name": "useActiveWorkflow", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/submit": {
            "post": {
                "description": "Posts the form to the webhook and waits for the result. A failed webhook status is reported in state.error while a parsed body is still returned in state.response.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ui"],
                "summary": "Submit a video for clipping",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "X-Session-ID", "in": "header"},
                    {"description": "Form input", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FormInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.UIState"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/clips/{idx}/copy": {
            "post": {
                "produces": ["application/json"],
                "tags": ["clips"],
                "summary": "Copy a clip caption to the clipboard",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "X-Session-ID", "in": "header"},
                    {"type": "integer", "description": "Clip index", "name": "idx", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/clips/export": {
            "get": {
                "description": "Export the clips of the last response of this session to an Excel file",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["clips"],
                "summary": "Export clips to Excel",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Excel file", "schema": {"type": "file"}},
                    "404": {"description": "error: error message", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "error: error message", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "models.FormInput": {
            "type": "object",
            "required": ["aspectRatio", "maxClipLengthSeconds", "sourceUrl"],
            "properties": {
                "aspectRatio": {"type": "string", "enum": ["9:16", "16:9", "1:1"], "example": "9:16"},
                "maxClipLengthSeconds": {"type": "integer", "maximum": 180, "minimum": 10, "example": 60},
                "removeFillerWords": {"type": "boolean", "example": true},
                "sourceUrl": {"type": "string", "example": "https://www.youtube.com/watch?v=abc"},
                "useActiveWorkflow": {"type": "boolean", "example": false}
            }
        },
        "services.UIState": {
            "type": "object",
            "properties": {
                "copiedIndex": {"type": "integer"},
                "endpoint": {"type": "string"},
                "error": {"type": "string"},
                "form": {"$ref": "#/definitions/models.FormInput"},
                "loading": {"type": "boolean"},
                "response": {"type": "object", "additionalProperties": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Repurposer UI API",
	Description:      "Form UI that sends videos to a clip workflow webhook and shows the returned clips",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
