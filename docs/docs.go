// Package docs registers the OpenAPI description served at /swagger.
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
        "/user/login": {"post": {"tags": ["users"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid email or password"}, "429": {"description": "Too many attempts"}}}},
        "/user/profile": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/user/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}},
        "/user/create-user": {"post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Create a user", "responses": {"201": {"description": "Created"}, "409": {"description": "User already exists"}}}},
        "/user/get-user": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}}}},
        "/user/update-user/{id}": {"put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/user/delete-user/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/candidate/add-candidate": {"post": {"security": [{"BearerAuth": []}], "tags": ["candidates"], "summary": "Upload a resume", "consumes": ["multipart/form-data"], "parameters": [{"type": "file", "name": "resume", "in": "formData", "required": true}], "responses": {"202": {"description": "Accepted"}}}},
        "/candidate/add-details": {"post": {"security": [{"BearerAuth": []}], "tags": ["candidates"], "summary": "Add a candidate", "responses": {"201": {"description": "Created"}, "409": {"description": "Candidate with this email already exists"}}}},
        "/candidate/update-candidate/{id}": {"put": {"security": [{"BearerAuth": []}], "tags": ["candidates"], "summary": "Update a candidate", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/candidate/get-candidate/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["candidates"], "summary": "Get a candidate", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/candidate/delete-candidate/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["candidates"], "summary": "Delete a candidate", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/candidate/filter": {"get": {"security": [{"BearerAuth": []}], "tags": ["candidates"], "summary": "Filter candidates", "responses": {"200": {"description": "OK"}}}},
        "/candidate/paginate-searchable": {"get": {"security": [{"BearerAuth": []}], "tags": ["candidates"], "summary": "Page through candidates", "responses": {"200": {"description": "OK"}}}},
        "/interview/add-interview": {"post": {"security": [{"BearerAuth": []}], "tags": ["interviews"], "summary": "Schedule an interview", "responses": {"201": {"description": "Created"}, "409": {"description": "Interview already scheduled"}}}},
        "/interview/get-interview": {"get": {"security": [{"BearerAuth": []}], "tags": ["interviews"], "summary": "List interviews", "responses": {"200": {"description": "OK"}}}},
        "/interview/get-interview/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["interviews"], "summary": "Get an interview", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/interview/get-interview-by-candidate-id/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["interviews"], "summary": "List a candidate's interviews", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/interview/update-interview/{id}": {"put": {"security": [{"BearerAuth": []}], "tags": ["interviews"], "summary": "Update an interview", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/interview/delete-interview/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["interviews"], "summary": "Delete an interview", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/interview/interview-filter": {"get": {"security": [{"BearerAuth": []}], "tags": ["interviews"], "summary": "Filter interviews", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid filters"}}}},
        "/skills/add-skill": {"post": {"security": [{"BearerAuth": []}], "tags": ["skills"], "summary": "Add a skill", "responses": {"201": {"description": "Created"}}}},
        "/skills/get-skill": {"get": {"security": [{"BearerAuth": []}], "tags": ["skills"], "summary": "List skills", "responses": {"200": {"description": "OK"}}}},
        "/positions/add-position": {"post": {"security": [{"BearerAuth": []}], "tags": ["positions"], "summary": "Add a position", "responses": {"201": {"description": "Created"}}}},
        "/positions/get-position": {"get": {"security": [{"BearerAuth": []}], "tags": ["positions"], "summary": "List positions", "responses": {"200": {"description": "OK"}}}},
        "/interview-round/add-interview-round": {"post": {"security": [{"BearerAuth": []}], "tags": ["interview-rounds"], "summary": "Add an interview round", "responses": {"201": {"description": "Created"}}}},
        "/interview-round/get-interview-round": {"get": {"security": [{"BearerAuth": []}], "tags": ["interview-rounds"], "summary": "List interview rounds", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "HRM API",
	Description:      "Candidate tracking, interview scheduling and review API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
