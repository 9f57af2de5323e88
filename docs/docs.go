// Package docs registers the OpenAPI description served at /swagger.
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
                "tags": ["ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new advisor",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "User created", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "400": {"description": "Invalid request format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Username already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Access token", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/student": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Add a student",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateStudentRequest"}}],
                "responses": {
                    "201": {"description": "Student added", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}},
                    "400": {"description": "Invalid student data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Student"}}}
                }
            }
        },
        "/student/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Update a student",
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Student updated", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Delete a student",
                "parameters": [{"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "Student deleted", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/predict/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["predictions"],
                "summary": "Predict dropout risk",
                "parameters": [{"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PredictionResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/student/{id}/interventions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "List a student's interventions",
                "parameters": [{"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.InterventionResponse"}}}
                }
            }
        },
        "/student/{id}/intervention": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "Log an intervention",
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateInterventionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Intervention logged", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/intervention/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "Update an intervention",
                "parameters": [
                    {"type": "integer", "format": "int64", "minimum": 1, "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/dto.UpdateInterventionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Intervention updated", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "404": {"description": "Intervention not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/dashboard_stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardStatsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "database": {"type": "string"}}},
        "dto.RegisterRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string", "maxLength": 80}, "password": {"type": "string", "maxLength": 72}}},
        "dto.LoginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "dto.TokenResponse": {"type": "object", "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string", "example": "Bearer"}, "expires_in": {"type": "integer"}}},
        "dto.SuccessResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "dto.CreatedResponse": {"type": "object", "properties": {"message": {"type": "string"}, "id": {"type": "integer"}}},
        "dto.ErrorDetail": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "field": {"type": "string"}, "severity": {"type": "string"}, "details": {}}},
        "dto.ErrorResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "error": {"$ref": "#/definitions/dto.ErrorDetail"}, "timestamp": {"type": "string"}}},
        "dto.CreateStudentRequest": {
            "type": "object",
            "required": ["student_name", "age", "gpa", "absences", "study_time_weekly"],
            "properties": {
                "student_name": {"type": "string"}, "age": {"type": "integer", "minimum": 0}, "gpa": {"type": "number", "minimum": 0},
                "absences": {"type": "integer", "minimum": 0}, "study_time_weekly": {"type": "number", "minimum": 0},
                "gender": {"type": "string"}, "ethnicity": {"type": "string"}, "parental_education": {"type": "string"},
                "tutoring": {"type": "string"}, "parental_support": {"type": "string"}, "extracurricular": {"type": "string"},
                "sports": {"type": "string"}, "music": {"type": "string"}, "volunteering": {"type": "string"}
            }
        },
        "dto.UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "student_name": {"type": "string"}, "age": {"type": "integer", "minimum": 0}, "gpa": {"type": "number", "minimum": 0},
                "absences": {"type": "integer", "minimum": 0}, "study_time_weekly": {"type": "number", "minimum": 0},
                "gender": {"type": "string"}, "ethnicity": {"type": "string"}, "parental_education": {"type": "string"},
                "tutoring": {"type": "string"}, "parental_support": {"type": "string"}, "extracurricular": {"type": "string"},
                "sports": {"type": "string"}, "music": {"type": "string"}, "volunteering": {"type": "string"}
            }
        },
        "models.Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "student_name": {"type": "string"}, "age": {"type": "integer"}, "gpa": {"type": "number"},
                "absences": {"type": "integer"}, "study_time_weekly": {"type": "number"},
                "gender": {"type": "string"}, "ethnicity": {"type": "string"}, "parental_education": {"type": "string"},
                "tutoring": {"type": "string"}, "parental_support": {"type": "string"}, "extracurricular": {"type": "string"},
                "sports": {"type": "string"}, "music": {"type": "string"}, "volunteering": {"type": "string"}
            }
        },
        "dto.PredictionResponse": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"}, "student_name": {"type": "string"}, "prediction": {"type": "integer"},
                "prediction_label": {"type": "string"}, "recommendation": {"type": "string"}, "explanation": {"type": "string"}
            }
        },
        "dto.CreateInterventionRequest": {"type": "object", "required": ["recommendation"], "properties": {"recommendation": {"type": "string"}, "notes": {"type": "string"}}},
        "dto.UpdateInterventionRequest": {"type": "object", "properties": {"status": {"type": "string"}, "notes": {"type": "string"}}},
        "dto.InterventionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "recommendation": {"type": "string"}, "status": {"type": "string"},
                "notes": {"type": "string"}, "created_at": {"type": "string", "example": "2025-04-23 12:01"}
            }
        },
        "dto.DashboardStatsResponse": {
            "type": "object",
            "properties": {
                "risk_distribution": {"type": "object", "properties": {"at_risk": {"type": "integer"}, "not_at_risk": {"type": "integer"}}},
                "gpa_distribution": {"type": "object", "properties": {
                    "0-1": {"type": "integer"}, "1-2": {"type": "integer"}, "2-3": {"type": "integer"}, "3-4": {"type": "integer"}, "4+": {"type": "integer"}
                }}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RiskWatch API",
	Description:      "Student dropout risk tracking: student records, risk predictions, interventions and dashboard statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
