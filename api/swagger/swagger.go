package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Pickup Records API",
        "description": "School pickup tracking: front-desk confirmations and the admin record log",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Roster lookups"},
        {"name": "Records", "description": "Front-desk pickup log"},
        {"name": "Admin", "description": "Record management and filters"}
    ],
    "paths": {
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Look up one student",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Student with display-formatted created_at", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/records": {
            "post": {
                "tags": ["Records"],
                "summary": "Log a pickup from the front desk",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing student_id", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "get": {
                "tags": ["Records"],
                "summary": "Read pickup records",
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string", "description": "Exact calendar date YYYY-MM-DD"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Records"],
                "summary": "Pickup counts per calendar day",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/verify-password": {
            "post": {
                "tags": ["Admin"],
                "summary": "Verify the admin password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyPasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "Accepted"},
                    "400": {"description": "Missing password", "schema": {"$ref": "#/definitions/APIError"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/admin/classes": {
            "get": {
                "tags": ["Admin"],
                "summary": "Distinct class names",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/students": {
            "get": {
                "tags": ["Admin"],
                "summary": "Student roster sorted by class then name",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/records": {
            "get": {
                "tags": ["Admin"],
                "summary": "Filtered pickup records, newest first",
                "parameters": [
                    {"name": "class_name", "in": "query", "type": "string"},
                    {"name": "student_id", "in": "query", "type": "string"},
                    {"name": "date_from", "in": "query", "type": "string"},
                    {"name": "date_to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Admin"],
                "summary": "Add a pickup record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdminCreateRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing student_id", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Bulk delete pickup records",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteRecordsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Deleted count reported"},
                    "400": {"description": "Missing or invalid ids", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/admin/records/{id}": {
            "put": {
                "tags": ["Admin"],
                "summary": "Replace a pickup record",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRecordRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "400": {"description": "Missing student_id or picked_up_at", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Unknown record or student", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/admin/records/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Download the filtered records as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "class_name": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "CreateRecordRequest": {
            "type": "object",
            "required": ["student_id"],
            "properties": {
                "student_id": {"type": "string"},
                "picked_up_by": {"type": "string"}
            }
        },
        "AdminCreateRecordRequest": {
            "type": "object",
            "required": ["student_id"],
            "properties": {
                "student_id": {"type": "string"},
                "picked_up_by": {"type": "string"},
                "picked_up_at": {"type": "string"}
            }
        },
        "UpdateRecordRequest": {
            "type": "object",
            "required": ["student_id", "picked_up_at"],
            "properties": {
                "student_id": {"type": "string"},
                "picked_up_by": {"type": "string"},
                "picked_up_at": {"type": "string"}
            }
        },
        "DeleteRecordsRequest": {
            "type": "object",
            "required": ["ids"],
            "properties": {
                "ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "VerifyPasswordRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
