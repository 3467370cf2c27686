// Package docs registra la documentación OpenAPI servida en /swagger.
//
// Se mantiene a mano junto con las anotaciones swag de los handlers;
// `swag init -g cmd/api/main.go` la reemplaza por la versión generada.
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
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.healthResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "description": "Valida credenciales y devuelve un token opaco para usar como ` + "`" + `Authorization: Bearer <token>` + "`" + `.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.loginResponse"}},
                    "400": {"description": "username y password obligatorios", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "credenciales inválidas", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/logout": {
            "post": {
                "description": "Revoca el token del request.",
                "tags": ["auth"],
                "summary": "Logout",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/medications": {
            "get": {
                "description": "Devuelve todos los medicamentos en orden de creación.",
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Listar medicamentos",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "description": "name y dosage son obligatorios; times y notes opcionales.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Crear medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"description": "Datos del medicamento", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.createMedicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/medications.Medication"}},
                    "400": {"description": "invalid json / name y dosage obligatorios", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/medications/{medicationID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Obtener medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.Medication"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Merge parcial: solo cambian los campos enviados. Un campo ausente o null conserva su valor.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Actualizar medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"description": "Campos a cambiar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.updateMedicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.Medication"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Devuelve el registro eliminado. Las tomas ya registradas no se tocan.",
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Eliminar medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.Medication"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Merge parcial: solo cambian los campos enviados. Un campo ausente o null conserva su valor.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Actualizar medicamento",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {"description": "Campos a cambiar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medications.updateMedicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.Medication"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/intakes": {
            "get": {
                "description": "Devuelve las tomas en orden de registro. date filtra por día exacto (no rango).",
                "produces": ["application/json"],
                "tags": ["intakes"],
                "summary": "Listar tomas",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "Día YYYY-MM-DD", "name": "date", "in": "query"},
                    {"type": "string", "description": "ID del medicamento", "name": "medicationId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/intakes.intakeListResponse"}},
                    "400": {"description": "date inválido", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "post": {
                "description": "medicationId y date son obligatorios. El medicamento tiene que existir al momento de registrar; su nombre queda copiado en la toma.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["intakes"],
                "summary": "Registrar toma",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"description": "Datos de la toma", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intakes.recordIntakeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/intakes.Intake"}},
                    "400": {"description": "invalid json / medicationId y date obligatorios", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "422": {"description": "medicationId no existe", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/api/day-overview": {
            "get": {
                "description": "Un elemento por medicamento registrado (aunque no tenga tomas), con las tomas del día y si al menos una fue confirmada. Sin date usa el día actual en UTC.",
                "produces": ["application/json"],
                "tags": ["day-overview"],
                "summary": "Resumen del día",
                "parameters": [
                    {"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "Día YYYY-MM-DD (default: hoy UTC)", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/overview.DayOverview"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "router.healthResponse": {
            "type": "object",
            "properties": {"app": {"type": "string"}, "status": {"type": "string"}}
        },
        "users.loginRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "users.loginUser": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "username": {"type": "string"}}
        },
        "users.loginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/users.loginUser"}}
        },
        "medications.Medication": {
            "type": "object",
            "properties": {
                "dosage": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "times": {"type": "array", "items": {"type": "string"}}
            }
        },
        "medications.medicationListResponse": {
            "type": "object",
            "properties": {"medications": {"type": "array", "items": {"$ref": "#/definitions/medications.Medication"}}}
        },
        "medications.createMedicationRequest": {
            "type": "object",
            "properties": {
                "dosage": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "times": {"type": "array", "items": {"type": "string"}}
            }
        },
        "medications.updateMedicationRequest": {
            "type": "object",
            "properties": {
                "dosage": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "times": {"type": "array", "items": {"type": "string"}}
            }
        },
        "intakes.Intake": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "id": {"type": "string"},
                "medicationId": {"type": "string"},
                "medicationName": {"type": "string"},
                "notes": {"type": "string"},
                "taken": {"type": "boolean"},
                "time": {"type": "string"}
            }
        },
        "intakes.intakeListResponse": {
            "type": "object",
            "properties": {"intakes": {"type": "array", "items": {"$ref": "#/definitions/intakes.Intake"}}}
        },
        "intakes.recordIntakeRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "medicationId": {"type": "string"},
                "notes": {"type": "string"},
                "taken": {"type": "boolean"},
                "time": {"type": "string"}
            }
        },
        "overview.MedicationDay": {
            "type": "object",
            "properties": {
                "dosage": {"type": "string"},
                "intakeEntries": {"type": "array", "items": {"$ref": "#/definitions/intakes.Intake"}},
                "medicationId": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "takenToday": {"type": "boolean"},
                "times": {"type": "array", "items": {"type": "string"}}
            }
        },
        "overview.Summary": {
            "type": "object",
            "properties": {"taken": {"type": "integer"}, "total": {"type": "integer"}}
        },
        "overview.DayOverview": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "perMedication": {"type": "array", "items": {"$ref": "#/definitions/overview.MedicationDay"}},
                "summary": {"$ref": "#/definitions/overview.Summary"}
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
	Title:            "MediManager API",
	Description:      "API para llevar el registro personal de medicamentos y tomas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
