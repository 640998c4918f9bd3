// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/chat": {
            "post": {
                "description": "Forwards a question to the RAG backend and relays its answer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Ask the resume assistant",
                "parameters": [
                    {"description": "Question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ProxyErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ProxyErrorResponse"}}
                }
            }
        },
        "/api/analyze-alignment": {
            "post": {
                "description": "Asks the RAG backend how well the resume fits a job description",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Analyze job alignment",
                "parameters": [
                    {"description": "Job description and question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AlignmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ProxyErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ProxyErrorResponse"}}
                }
            }
        },
        "/api/ingest": {
            "post": {
                "security": [{"WallSession": []}],
                "description": "Uploads a PDF into the knowledge base. Requires a wall session.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Ingest a document",
                "parameters": [
                    {"type": "file", "description": "PDF document", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Source identifier", "name": "source_id", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ProxyErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/dto.ProxyErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ProxyErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "description": "Returns the health status of the service",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/api/v1/health/ready": {
            "get": {
                "description": "Probes GitHub and the RAG backend concurrently",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ReadinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ReadinessResponse"}}
                }
            }
        },
        "/api/v1/repos": {
            "get": {
                "description": "Returns one page of the owner's non-fork repositories, newest first, filtered by search term and language",
                "produces": ["application/json"],
                "tags": ["Repositories"],
                "summary": "Browse projects",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on name, description or topics", "name": "search", "in": "query"},
                    {"type": "string", "default": "All", "description": "Exact language, or All", "name": "language", "in": "query"},
                    {"minimum": 1, "type": "integer", "default": 1, "description": "Page number, clamped to the available pages", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BrowserPageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AlignmentRequest": {
            "type": "object",
            "properties": {
                "job_description": {"type": "string"},
                "question": {"type": "string"}
            }
        },
        "dto.ChatRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string", "example": "What projects used Go?"},
                "top_k": {"type": "integer", "example": 5}
            }
        },
        "dto.ProxyErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "object"}
            }
        },
        "dto.RepositoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "url": {"type": "string"},
                "description": {"type": "string"},
                "language": {"type": "string"},
                "homepage": {"type": "string"},
                "stars": {"type": "integer"},
                "forks": {"type": "integer"},
                "topics": {"type": "array", "items": {"type": "string"}},
                "updated_at": {"type": "string"}
            }
        },
        "dto.PaginationResponse": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "window": {"type": "array", "items": {"type": "integer"}},
                "has_prev": {"type": "boolean"},
                "has_next": {"type": "boolean"}
            }
        },
        "dto.ShowingRange": {
            "type": "object",
            "properties": {
                "from": {"type": "integer"},
                "to": {"type": "integer"}
            }
        },
        "dto.BrowserPageResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "string"},
                "error": {"type": "string"},
                "repositories": {"type": "array", "items": {"$ref": "#/definitions/dto.RepositoryResponse"}},
                "languages": {"type": "array", "items": {"type": "string"}},
                "language": {"type": "string"},
                "search": {"type": "string"},
                "pagination": {"$ref": "#/definitions/dto.PaginationResponse"},
                "showing": {"$ref": "#/definitions/dto.ShowingRange"},
                "total": {"type": "integer"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ReadinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "WallSession": {
            "description": "Wall session token issued by /wall/unlock",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio Core API",
	Description:      "Portfolio site with a GitHub project browser and a resume assistant proxy",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
