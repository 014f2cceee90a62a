// Package docs provides the Swagger specification served at /swagger.
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
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy"}
                }
            }
        },
        "/api/v1/tasks/quick-add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Quick-add a task",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "List tasks",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/tasks/timeline": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Timeline projection",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Update a task",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Delete a task",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/tasks/{id}/toggle": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Toggle completion",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/tasks/{id}/date": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Assign a calendar date",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/notes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "List notes",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Create a note",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/notes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Get note detail",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Update a note",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Delete a note",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/notes/{id}/date": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Assign a calendar date",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/assistant/messages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Send a message to the assistant",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Category"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Category"],
                "summary": "Add a category",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/v1/categories/active": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Category"],
                "summary": "Set the active category",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Get settings",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/settings/profile": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Update profile",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/settings/theme": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Set theme",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/settings/wallpaper": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Set wallpaper",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/settings/api-key": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Set the Gemini API key",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/settings/onboarding": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Complete onboarding",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/calendar/{year}/{month}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Month grid",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/calendar/export/{id}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Export a task to Google Calendar",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Maxitask API",
	Description:      "Personal productivity service: tasks, notes, calendar, and a Gemini-backed assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
