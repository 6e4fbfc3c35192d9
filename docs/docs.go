// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.LoginResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/auth/password": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Change password",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/handlers.ChangePasswordRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/links": {
            "get": {
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Public links",
                "parameters": [{"type": "boolean", "in": "query", "name": "includeEmpty"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PublicCategory"}}}}
            }
        },
        "/api/links/grouped": {
            "get": {
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Public links by tag",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LinksByTag"}}}
            }
        },
        "/api/admin/links": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-links"],
                "summary": "List all links",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-links"],
                "summary": "Create link",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/handlers.LinkRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Link"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/admin/links/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-links"],
                "summary": "Get link",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Link"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-links"],
                "summary": "Update link",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/handlers.LinkRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Link"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-links"],
                "summary": "Delete link",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            }
        },
        "/api/admin/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-categories"],
                "summary": "Create category",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/handlers.CategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            }
        },
        "/api/admin/categories/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-categories"],
                "summary": "Get category",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-categories"],
                "summary": "Update category",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/handlers.CategoryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-categories"],
                "summary": "Delete category",
                "description": "Fails with 400 while the category still has links.",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            }
        },
        "/api/admin/categories/{id}/links": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin-categories"],
                "summary": "List links of a category",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}}
            }
        }
    },
    "definitions": {
        "handlers.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "Link not found"}, "code": {"type": "string", "example": "NOT_FOUND"}}
        },
        "handlers.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string", "example": "alice"}, "password": {"type": "string", "example": "secret1"}}
        },
        "handlers.ChangePasswordRequest": {
            "type": "object",
            "properties": {"currentPassword": {"type": "string"}, "newPassword": {"type": "string"}}
        },
        "handlers.CategoryRequest": {
            "type": "object",
            "properties": {"name": {"type": "string", "example": "Social"}, "order": {"type": "integer", "example": 1}}
        },
        "handlers.LinkRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "GitHub"},
                "url": {"type": "string", "example": "https://github.com"},
                "categoryId": {"type": "integer", "example": 1},
                "order": {"type": "integer", "example": 0},
                "isActive": {"type": "boolean", "example": true},
                "tag": {"type": "string", "enum": ["SHOPEE", "BLIBLI", "LAZADA", "TIKTOK", "TOKOPEDIA"]}
            }
        },
        "models.PublicUser": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "isAdmin": {"type": "boolean"}}
        },
        "service.LoginResult": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/models.PublicUser"}}
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "order": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "models.Link": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "url": {"type": "string"},
                "categoryId": {"type": "integer"},
                "order": {"type": "integer"},
                "isActive": {"type": "boolean"},
                "tag": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"},
                "category": {"$ref": "#/definitions/models.Category"}
            }
        },
        "models.PublicCategory": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "order": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}}
            }
        },
        "models.LinksByTag": {
            "type": "object",
            "properties": {
                "shopeeLinks": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}},
                "blibliLinks": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}},
                "lazadaLinks": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}},
                "tiktokLinks": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}},
                "tokopediaLinks": {"type": "array", "items": {"$ref": "#/definitions/models.Link"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "linkhub API",
	Description:      "Curated, categorized links with an admin-gated write API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
