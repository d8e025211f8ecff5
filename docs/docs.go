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
        "/questions": {
            "get": {
                "produces": ["application/json"],
                "summary": "List the questionnaire",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/sessions": {
            "post": {
                "produces": ["application/json"],
                "summary": "Start a questionnaire session",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/SessionView"}}}
            }
        },
        "/sessions/{id}": {
            "get": {
                "summary": "Current session state",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionView"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/sessions/{id}/answer": {
            "post": {
                "summary": "Answer the current question",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"value": {"type": "string"}}}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionView"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/sessions/{id}/submit": {
            "post": {
                "summary": "Proceed past the text question",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionView"}}}
            }
        },
        "/sessions/{id}/back": {
            "post": {
                "summary": "Go back one question",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionView"}}}
            }
        },
        "/sessions/{id}/reset": {
            "post": {
                "summary": "Start the questionnaire over",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionView"}}}
            }
        },
        "/sessions/{id}/report": {
            "get": {
                "summary": "Report for a completed session",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Report"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/reports": {
            "post": {
                "summary": "Score answers into a report",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnswersRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Report"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/reports/html": {
            "post": {
                "produces": ["text/html"],
                "summary": "Render the report page",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnswersRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/pdf": {
            "post": {
                "produces": ["application/pdf"],
                "summary": "Download the report as PDF",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnswersRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/email": {
            "post": {
                "summary": "Email the report",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EmailRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}, "500": {"description": "Failed to send email.", "schema": {"$ref": "#/definitions/Error"}}, "503": {"description": "SMTP not configured", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/reports/narrative": {
            "post": {
                "summary": "Generate the AI narrative synchronously",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnswersRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"report": {"type": "string"}}}}, "502": {"description": "Error generating the report.", "schema": {"$ref": "#/definitions/Error"}}, "503": {"description": "Missing OpenAI API key.", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/narratives": {
            "post": {
                "summary": "Start an AI narrative job",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnswersRequest"}}],
                "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/NarrativeJob"}}}
            }
        },
        "/narratives/{id}": {
            "get": {
                "summary": "Narrative job status",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/NarrativeJob"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/ws/narratives/{id}": {
            "get": {
                "summary": "WebSocket push of the finished narrative job",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/share": {
            "post": {
                "summary": "Create a share link",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnswersRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"type": "object", "properties": {"token": {"type": "string"}, "url": {"type": "string"}}}}}
            }
        },
        "/share/{token}": {
            "get": {
                "summary": "Report for a share link",
                "parameters": [{"name": "token", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Report"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}}
            }
        }
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}}},
        "AnswersRequest": {"type": "object", "properties": {"answers": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "EmailRequest": {"type": "object", "properties": {
            "email": {"type": "string"},
            "answers": {"type": "object", "additionalProperties": {"type": "string"}},
            "pdfBase64": {"type": "string"},
            "attachPdf": {"type": "boolean"}
        }},
        "SessionView": {"type": "object", "properties": {
            "id": {"type": "string"},
            "question": {"type": "object"},
            "number": {"type": "integer"},
            "total": {"type": "integer"},
            "progress": {"type": "number"},
            "answers": {"type": "object", "additionalProperties": {"type": "string"}},
            "canGoBack": {"type": "boolean"},
            "canSubmit": {"type": "boolean"},
            "completed": {"type": "boolean"}
        }},
        "Report": {"type": "object", "properties": {
            "profile": {"type": "string"},
            "riskScore": {"type": "integer"},
            "band": {"type": "object"},
            "description": {"type": "string"},
            "recommendations": {"type": "array", "items": {"type": "string"}},
            "responses": {"type": "array", "items": {"type": "object"}},
            "resources": {"type": "array", "items": {"type": "object"}},
            "closing": {"type": "array", "items": {"type": "string"}},
            "generatedAt": {"type": "string"}
        }},
        "NarrativeJob": {"type": "object", "properties": {
            "id": {"type": "string"},
            "status": {"type": "string", "enum": ["pending", "ready", "failed"]},
            "report": {"type": "string"},
            "error": {"type": "string"},
            "createdAt": {"type": "string"},
            "readyAt": {"type": "string"}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Money Brief Investor Profile API",
	Description:      "Risk questionnaire scoring, reports, AI narratives and delivery",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
