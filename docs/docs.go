// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
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
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthStatus"}}
                }
            }
        },
        "/organizations": {
            "get": {
                "description": "List every organization in provider order. Passing limit or cursor returns a page instead of the full list.",
                "produces": ["application/json"],
                "tags": ["organizations"],
                "summary": "List organizations",
                "parameters": [
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 20, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Cursor from a previous page", "name": "cursor", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/organizations/{orgId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["organizations"],
                "summary": "Get organization",
                "parameters": [
                    {"type": "string", "example": "org-techcorp", "description": "Organization ID", "name": "orgId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/analytics": {
            "get": {
                "description": "Compute analytics for every organization with enrolled users, in provider order.",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Analytics for all organizations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/analytics/preview": {
            "post": {
                "description": "Compute analytics for an organization profile and cohort supplied in the request body. Nothing is stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Analyse an ad-hoc cohort",
                "parameters": [
                    {"description": "Organization and cohort", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.PreviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Malformed JSON", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/analytics/{orgId}": {
            "get": {
                "description": "Clinical, productivity, engagement, ROI and weekly trend statistics. minimumCohortMet tells clients whether the result may be displayed.",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Analytics for one organization",
                "parameters": [
                    {"type": "string", "example": "org-techcorp", "description": "Organization ID", "name": "orgId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Organization not found", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "422": {"description": "Organization has no enrolled users", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/analytics/{orgId}/highlights": {
            "get": {
                "description": "Deterministic headline figures. Does not call the LLM.",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Executive highlights",
                "parameters": [
                    {"type": "string", "description": "Organization ID", "name": "orgId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Minimum cohort size not met", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/analytics/{orgId}/insights": {
            "get": {
                "description": "Headline figures plus a narrative generated from aggregate outcomes only.",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Executive insights with LLM narrative",
                "parameters": [
                    {"type": "string", "description": "Organization ID", "name": "orgId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Minimum cohort size not met", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "502": {"description": "LLM request failed", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "503": {"description": "LLM service unavailable", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/analytics/{orgId}/insights/feedback": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["insights"],
                "summary": "Rate an insights narrative",
                "parameters": [
                    {"type": "string", "description": "Organization ID", "name": "orgId", "in": "path", "required": true},
                    {"description": "Feedback request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FeedbackRequest"}}
                ],
                "responses": {
                    "204": {"description": "Feedback submitted"},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/reports/{orgId}/html": {
            "get": {
                "description": "Printable executive outcomes report. Refused when the cohort is below the privacy threshold.",
                "produces": ["text/html"],
                "tags": ["reports"],
                "summary": "Executive report (HTML)",
                "parameters": [
                    {"type": "string", "description": "Organization ID", "name": "orgId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML document", "schema": {"type": "string"}},
                    "400": {"description": "Minimum cohort size not met", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/reports/{orgId}/xlsx": {
            "get": {
                "description": "Spreadsheet with summary, clinical, productivity/ROI and weekly trend sheets.",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["reports"],
                "summary": "Executive report (XLSX)",
                "parameters": [
                    {"type": "string", "description": "Organization ID", "name": "orgId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "XLSX workbook", "schema": {"type": "file"}},
                    "400": {"description": "Minimum cohort size not met", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/problem.Problem"}}
                }
            }
        },
        "/debug/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["debug"],
                "summary": "Dataset statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "handler.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string", "example": "2025-10-01T12:00:00.000Z"}
            }
        },
        "handler.FeedbackRequest": {
            "type": "object",
            "properties": {
                "traceId": {"type": "string"},
                "score": {"type": "integer", "minimum": 1, "maximum": 5},
                "comment": {"type": "string"}
            }
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {}
            }
        },
        "problem.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "problem.Problem": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/problem.FieldError"}},
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string"}
            }
        },
        "domain.PreviewRequest": {
            "type": "object",
            "required": ["organization", "users"],
            "properties": {
                "organization": {"type": "object"},
                "users": {"type": "array", "minItems": 1, "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Wellness Outcomes API",
	Description:      "Population-level clinical, productivity and ROI analytics for employer mental-health programs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
