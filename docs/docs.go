// Package docs holds the Swagger document served at /swagger. Regenerate with `swag init -g cmd/resumeparser/main.go`.
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
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/resumes/parse": {
            "post": {
                "description": "Accepts one or more PDF/DOCX files and returns one record per file. Documents that cannot be read come back with status \"failed\".",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["resumes"],
                "summary": "Parse resumes",
                "parameters": [
                    {"type": "file", "description": "Resume files (PDF or DOCX)", "name": "files", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ParseResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/batches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["batches"],
                "summary": "List batches",
                "parameters": [
                    {"type": "integer", "description": "Page size (max 200)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/resume.Batch"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/batches/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["batches"],
                "summary": "Get batch",
                "parameters": [
                    {"type": "string", "description": "Batch ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ParseResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/batches/{id}/csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["batches"],
                "summary": "Download batch as CSV",
                "parameters": [
                    {"type": "string", "description": "Batch ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Append Status and Error columns", "name": "errors", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ParseResponse": {
            "type": "object",
            "properties": {
                "batch": {"$ref": "#/definitions/resume.Batch"},
                "summary": {"$ref": "#/definitions/resume.Summary"}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "resume.Batch": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "source": {"type": "string", "enum": ["folder", "upload"]},
                "total": {"type": "integer"},
                "failed": {"type": "integer"},
                "createdAt": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/resume.Record"}}
            }
        },
        "resume.Failure": {
            "type": "object",
            "properties": {
                "file": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "resume.Record": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "file": {"type": "string"},
                "status": {"type": "string", "enum": ["ok", "failed"]},
                "error": {"type": "string"},
                "fieldErrors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "resume.SkillCount": {
            "type": "object",
            "properties": {
                "skill": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "resume.Summary": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "failed": {"type": "integer"},
                "topSkill": {"type": "string"},
                "frequencies": {"type": "array", "items": {"$ref": "#/definitions/resume.SkillCount"}},
                "failures": {"type": "array", "items": {"$ref": "#/definitions/resume.Failure"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "resumeparser API",
	Description:      "Извлечение имени, email, телефона и навыков из резюме в формате PDF и DOCX.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
