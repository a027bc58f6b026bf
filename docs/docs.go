// Package docs registers the OpenAPI description of the planner API with
// swag so gin-swagger can serve it.
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
		"/events/{eventId}/applications": {
			"get": {
				"tags": [
					"applications"
				],
				"summary": "List an event's applications",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "status",
						"in": "query",
						"enum": [
							"PENDING",
							"APPROVED",
							"REJECTED",
							"WAITLIST",
							"PAID"
						]
					},
					{
						"type": "string",
						"name": "q",
						"in": "query",
						"description": "Brand or contact substring"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"applications"
				],
				"summary": "Submit an application",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/applications.CreateApplicationRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/applications/{id}/status": {
			"patch": {
				"tags": [
					"applications"
				],
				"summary": "Move an application to another status",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Application id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/applications.UpdateStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/events/{eventId}/layout": {
			"get": {
				"tags": [
					"layout"
				],
				"summary": "Open the plan: plan, editor state, capacity, roster and warnings",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/save": {
			"post": {
				"tags": [
					"layout"
				],
				"summary": "Persist the session's plan",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"422": {
						"description": "Plan breaks an invariant",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/session": {
			"delete": {
				"tags": [
					"layout"
				],
				"summary": "Discard unsaved changes",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"404": {
						"description": "No open session",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/capacity": {
			"get": {
				"tags": [
					"layout"
				],
				"summary": "Capacity report per zone and size",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/exhibitors": {
			"get": {
				"tags": [
					"layout"
				],
				"summary": "Roster with size hints for the selected stand",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "q",
						"in": "query",
						"description": "Brand or category substring"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/tool": {
			"put": {
				"tags": [
					"layout"
				],
				"summary": "Select the active tool",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/editor.SelectToolRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/events/{eventId}/layout/cells/click": {
			"post": {
				"tags": [
					"layout"
				],
				"summary": "Apply the active tool to a cell",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/editor.ClickCellRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/events/{eventId}/layout/grid": {
			"put": {
				"tags": [
					"layout"
				],
				"summary": "Resize the grid",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/editor.ResizeGridRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/events/{eventId}/layout/pricing": {
			"put": {
				"tags": [
					"layout"
				],
				"summary": "Replace prices, equipment and extras",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/editor.PricingRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/events/{eventId}/layout/zones": {
			"post": {
				"tags": [
					"layout"
				],
				"summary": "Add a zone and make it active",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/zones/active": {
			"put": {
				"tags": [
					"layout"
				],
				"summary": "Select the active zone",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/editor.SelectZoneRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/events/{eventId}/layout/zones/{zoneId}": {
			"patch": {
				"tags": [
					"layout"
				],
				"summary": "Update a zone",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Zone id",
						"name": "zoneId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/editor.UpdateZoneRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"layout"
				],
				"summary": "Delete a zone and its stands",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Zone id",
						"name": "zoneId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/stands/{standId}": {
			"delete": {
				"tags": [
					"layout"
				],
				"summary": "Delete a stand",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Stand id",
						"name": "standId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/stands/{standId}/occupant": {
			"put": {
				"tags": [
					"layout"
				],
				"summary": "Bind an exhibitor to a stand",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Stand id",
						"name": "standId",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/editor.AssignOccupantRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"layout"
				],
				"summary": "Clear a stand's exhibitor",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Stand id",
						"name": "standId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		},
		"/events/{eventId}/layout/picker": {
			"post": {
				"tags": [
					"layout"
				],
				"summary": "Open the occupant picker for the selected stand",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"layout"
				],
				"summary": "Close the occupant picker",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Event id (1-64 letters, digits, '-' or '_')",
						"name": "eventId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"400": {
						"description": "Bad request",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"response.StandardApiResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"status_code": {
					"type": "integer",
					"example": 200
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				},
				"errors": {
					"type": "object"
				}
			}
		},
		"applications.CreateApplicationRequest": {
			"type": "object",
			"required": [
				"brandName",
				"contactPerson",
				"zone"
			],
			"properties": {
				"brandName": {
					"type": "string"
				},
				"contactPerson": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"zone": {
					"type": "string",
					"enum": [
						"S",
						"M",
						"L"
					]
				},
				"zoneCategory": {
					"type": "string",
					"enum": [
						"Secondhands",
						"Local Brands",
						"Designers",
						"Beauty",
						"Tattoo"
					]
				}
			}
		},
		"applications.UpdateStatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"PENDING",
						"APPROVED",
						"REJECTED",
						"WAITLIST",
						"PAID"
					]
				}
			}
		},
		"editor.SelectToolRequest": {
			"type": "object",
			"required": [
				"tool"
			],
			"properties": {
				"tool": {
					"type": "string",
					"enum": [
						"select",
						"place-S",
						"place-M",
						"place-L",
						"erase"
					]
				}
			}
		},
		"editor.ClickCellRequest": {
			"type": "object",
			"required": [
				"x",
				"y"
			],
			"properties": {
				"x": {
					"type": "integer"
				},
				"y": {
					"type": "integer"
				}
			}
		},
		"editor.ResizeGridRequest": {
			"type": "object",
			"required": [
				"width",
				"height"
			],
			"properties": {
				"width": {
					"type": "integer"
				},
				"height": {
					"type": "integer"
				}
			}
		},
		"editor.SelectZoneRequest": {
			"type": "object",
			"properties": {
				"zoneId": {
					"type": "string"
				}
			}
		},
		"editor.UpdateZoneRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"color": {
					"type": "string",
					"example": "#e76f51"
				},
				"category": {
					"type": "string",
					"enum": [
						"Secondhands",
						"Local Brands",
						"Designers",
						"Beauty",
						"Tattoo"
					]
				},
				"capacities": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				}
			}
		},
		"editor.AssignOccupantRequest": {
			"type": "object",
			"required": [
				"exhibitorId"
			],
			"properties": {
				"exhibitorId": {
					"type": "string"
				}
			}
		},
		"editor.ExtraItemRequest": {
			"type": "object",
			"required": [
				"label"
			],
			"properties": {
				"id": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"price": {
					"type": "string"
				}
			}
		},
		"editor.PricingRequest": {
			"type": "object",
			"properties": {
				"prices": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"equipment": {
					"type": "object",
					"additionalProperties": {
						"type": "array",
						"items": {
							"type": "string"
						}
					}
				},
				"extras": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/editor.ExtraItemRequest"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Stand Planner API",
	Description:      "Floor plans for market events: zones, S/M/L stands on a grid, capacity and exhibitor placement.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
