// Package docs holds the OpenAPI document for the survey API and registers
// it with swag. GroupEntry is keyed by its column name, which swag cannot
// derive from the struct, so the document is maintained by hand.
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
        "/grouped": {
            "get": {
                "description": "Group respondents by a categorical column and return the count and support rate of each group, ordered by group value",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "support"
                ],
                "summary": "Grouped support",
                "parameters": [
                    {
                        "enum": [
                            "gender",
                            "race",
                            "age_group",
                            "education",
                            "income"
                        ],
                        "type": "string",
                        "description": "Column to group by",
                        "name": "group_by",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Support per group",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.GroupEntry"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid group_by",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/support": {
            "get": {
                "description": "Return the overall support rate and total respondent count",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "support"
                ],
                "summary": "Overall support",
                "responses": {
                    "200": {
                        "description": "Overall support",
                        "schema": {
                            "$ref": "#/definitions/model.AggregateResult"
                        }
                    }
                }
            }
        },
        "/support_by": {
            "get": {
                "description": "Filter respondents by optional demographic attributes (case-insensitive) and return their support rate",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "support"
                ],
                "summary": "Filtered support",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by gender",
                        "name": "gender",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by race",
                        "name": "race",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by age group",
                        "name": "age_group",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by education level",
                        "name": "education",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by income category",
                        "name": "income",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Filtered support",
                        "schema": {
                            "$ref": "#/definitions/model.AggregateResult"
                        }
                    },
                    "404": {
                        "description": "No respondents match the given filters",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                }
            }
        },
        "model.AggregateResult": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "support_rate": {
                    "type": "number"
                }
            }
        },
        "model.GroupEntry": {
            "type": "object",
            "additionalProperties": {
                "type": "string"
            },
            "properties": {
                "count": {
                    "type": "integer"
                },
                "support_rate": {
                    "type": "number"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Public Policy Feedback API",
	Description:      "API for summarising support for a policy across demographic groups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
