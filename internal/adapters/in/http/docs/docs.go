// Package docs holds the OpenAPI document served under /swagger. Regenerate with
// `swag init -g internal/adapters/in/http/server.go -o internal/adapters/in/http/docs`.
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
        "/api/order/complete": {
            "post": {
                "tags": ["orders"],
                "summary": "Split a cart into one pending order per store",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "caller id", "name": "X-Actor-ID", "in": "header", "required": true},
                    {"type": "string", "description": "caller role", "name": "X-Actor-Role", "in": "header", "required": true},
                    {"type": "string", "description": "deduplicates retried submissions", "name": "Idempotency-Key", "in": "header"},
                    {"description": "cart", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CheckoutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CheckoutResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/api/order": {
            "get": {
                "tags": ["orders"],
                "summary": "List the caller's orders, newest first",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "caller id", "name": "X-Actor-ID", "in": "header", "required": true},
                    {"type": "string", "description": "caller role", "name": "X-Actor-Role", "in": "header", "required": true},
                    {"type": "string", "description": "lower bound, ignored when unparseable", "name": "from", "in": "query"},
                    {"type": "string", "description": "upper bound, inclusive to the end of its day", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.Order"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/api/order/seller": {
            "get": {
                "tags": ["orders"],
                "summary": "List orders placed with the caller's store, newest first",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "caller id", "name": "X-Actor-ID", "in": "header", "required": true},
                    {"type": "string", "description": "caller role", "name": "X-Actor-Role", "in": "header", "required": true},
                    {"type": "string", "description": "lower bound", "name": "from", "in": "query"},
                    {"type": "string", "description": "upper bound", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.Order"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/api/order/confirm/{orderId}": {
            "put": {
                "tags": ["orders"],
                "summary": "Confirm a pending order of the caller's store",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "caller id", "name": "X-Actor-ID", "in": "header", "required": true},
                    {"type": "string", "description": "caller role", "name": "X-Actor-Role", "in": "header", "required": true},
                    {"type": "string", "description": "order id", "name": "orderId", "in": "path", "required": true},
                    {"description": "delivery estimate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ConfirmRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DecisionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/api/order/deny/{orderId}": {
            "put": {
                "tags": ["orders"],
                "summary": "Deny a pending order of the caller's store",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "caller id", "name": "X-Actor-ID", "in": "header", "required": true},
                    {"type": "string", "description": "caller role", "name": "X-Actor-Role", "in": "header", "required": true},
                    {"type": "string", "description": "order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DecisionResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/api/admin/orders/all": {
            "get": {
                "tags": ["admin"],
                "summary": "List every order (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "caller id", "name": "X-Actor-ID", "in": "header", "required": true},
                    {"type": "string", "description": "caller role", "name": "X-Actor-Role", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.AdminOrder"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        },
        "/api/admin/orders/pending": {
            "get": {
                "tags": ["admin"],
                "summary": "List orders awaiting a decision (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "caller id", "name": "X-Actor-ID", "in": "header", "required": true},
                    {"type": "string", "description": "caller role", "name": "X-Actor-Role", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.AdminOrder"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.Error"}}
                }
            }
        }
    },
    "definitions": {
        "http.CartItem": {
            "type": "object",
            "properties": {
                "storeId": {"type": "string"},
                "productId": {"type": "string"},
                "title": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "number"}
            }
        },
        "http.CheckoutRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.CartItem"}},
                "customerNote": {"type": "string"}
            }
        },
        "http.CreatedOrder": {
            "type": "object",
            "properties": {
                "orderId": {"type": "string"},
                "storeId": {"type": "string"},
                "store": {"type": "string"},
                "totalPrice": {"type": "number"}
            }
        },
        "http.SkippedStore": {
            "type": "object",
            "properties": {
                "storeId": {"type": "string"},
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.CheckoutResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "orders": {"type": "array", "items": {"$ref": "#/definitions/http.CreatedOrder"}},
                "skipped": {"type": "array", "items": {"$ref": "#/definitions/http.SkippedStore"}},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/http.Warning"}}
            }
        },
        "http.ConfirmRequest": {
            "type": "object",
            "properties": {
                "estimatedDeliveryTime": {"type": "string"}
            }
        },
        "http.OrderItem": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"},
                "title": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "number"}
            }
        },
        "http.Customer": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "region": {"type": "string"},
                "street": {"type": "string"},
                "floor": {"type": "string"},
                "doorbell": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "http.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "storeId": {"type": "string"},
                "customerId": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.OrderItem"}},
                "totalPrice": {"type": "number"},
                "note": {"type": "string"},
                "status": {"type": "string"},
                "estimatedDeliveryTime": {"type": "string"},
                "createdAt": {"type": "string"},
                "decidedAt": {"type": "string"},
                "storeName": {"type": "string"},
                "customer": {"$ref": "#/definitions/http.Customer"}
            }
        },
        "http.DecisionResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "order": {"$ref": "#/definitions/http.Order"},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/http.Warning"}}
            }
        },
        "http.AdminOrder": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "storeId": {"type": "string"},
                "storeName": {"type": "string"},
                "customerId": {"type": "string"},
                "customerUsername": {"type": "string"},
                "totalPrice": {"type": "number"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "http.Warning": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "kind": {"type": "string"},
                "message": {"type": "string"}
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
	Title:            "Marketplace Orders API",
	Description:      "Cart checkout, seller decisions and order listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
