// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/api/company/signup": {
            "post": {
                "tags": ["company"],
                "summary": "Register a company",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/company/login": {
            "post": {
                "tags": ["company"],
                "summary": "Company login",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/company/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["company"],
                "summary": "Show company profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["company"],
                "summary": "Update company profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["company"],
                "summary": "Delete company profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/company/forgot-password": {
            "post": {
                "tags": ["company"],
                "summary": "Request company password reset",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/company/reset-password/{token}": {
            "put": {
                "tags": ["company"],
                "summary": "Redeem company password reset",
                "parameters": [{"type": "string", "name": "token", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/company/update-password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["company"],
                "summary": "Update company password",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/company/all": {
            "get": {
                "tags": ["company"],
                "summary": "List all companies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/company/inquiries": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["inquiry"],
                "summary": "List inquiries received by the company",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/signup": {
            "post": {
                "tags": ["customer"],
                "summary": "Register a customer",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/login": {
            "post": {
                "tags": ["customer"],
                "summary": "Customer login",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["customer"],
                "summary": "Show customer profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["customer"],
                "summary": "Update customer profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["customer"],
                "summary": "Delete customer profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/forgot-password": {
            "post": {
                "tags": ["customer"],
                "summary": "Request customer password reset",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/reset-password/{token}": {
            "put": {
                "tags": ["customer"],
                "summary": "Redeem customer password reset",
                "parameters": [{"type": "string", "name": "token", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/update-password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["customer"],
                "summary": "Update customer password",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/send": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["inquiry"],
                "summary": "Send an inquiry to a company",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/customer/view": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["inquiry"],
                "summary": "List inquiries sent by the customer",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/product/create": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["product"],
                "summary": "Create a product or restock an existing one",
                "responses": {
                    "200": {"description": "quantity merged into existing product", "schema": {"$ref": "#/definitions/handler.envelope"}},
                    "201": {"description": "new product created", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/product/search": {
            "post": {
                "tags": ["product"],
                "summary": "Search products by name substring",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/product/{productName}/details": {
            "get": {
                "tags": ["product"],
                "summary": "Get product details by name",
                "parameters": [{"type": "string", "name": "productName", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/api/product/company/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["product"],
                "summary": "List the authenticated company's products",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        }
    },
    "definitions": {
        "handler.envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "token": {"type": "string"},
                "data": {}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "TradeConnect Marketplace API",
	Description:      "Multi-tenant marketplace backend: company and customer accounts, product catalog and inquiries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
