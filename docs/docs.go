// Package docs registers the OpenAPI description served at /swagger/.
// Regenerate with: swag init -g cmd/app/main.go
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
        "/api/v1/banners": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wish"],
                "summary": "List banners",
                "parameters": [
                    {"type": "boolean", "description": "Only running banners", "name": "active", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.BannerSummary"}}}
                }
            }
        },
        "/api/v1/wish/pull": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wish"],
                "summary": "Pull on a banner",
                "parameters": [
                    {"description": "Pull request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PullRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PullResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/wish/target": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wish"],
                "summary": "Set the epitomized wish target",
                "parameters": [
                    {"description": "Target request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetWishTargetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PlayerBannerState"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/wish/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wish"],
                "summary": "Get player pity counters",
                "parameters": [
                    {"type": "string", "name": "player_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PlayerGachaInfo"}}
                }
            }
        },
        "/api/v1/wish/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wish"],
                "summary": "Get wish history",
                "parameters": [
                    {"type": "string", "name": "player_id", "in": "query", "required": true},
                    {"type": "string", "name": "banner_type", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HistoryResponse"}}
                }
            }
        },
        "/api/v1/wish/simulate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wish"],
                "summary": "Monte Carlo odds estimate",
                "parameters": [
                    {"description": "Simulation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SimulateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wish.SimulationStats"}}
                }
            }
        },
        "/api/v1/admin/banners/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Reload banners",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ReloadResponse"}}
                }
            }
        },
        "/api/v1/admin/cache/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get player cache stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wish.CacheStats"}}
                }
            }
        },
        "/healthz": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/readyz": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/version": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Version information", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VersionInfo"}}}}
        }
    },
    "definitions": {
        "domain.BannerSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "banner_type": {"type": "string"},
                "gacha_type": {"type": "integer"},
                "schedule_id": {"type": "integer"},
                "rate_up_items5": {"type": "array", "items": {"type": "integer"}},
                "rate_up_items4": {"type": "array", "items": {"type": "integer"}},
                "wish_max_progress": {"type": "integer"},
                "begin_time": {"type": "string"},
                "end_time": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "domain.PlayerBannerState": {
            "type": "object",
            "properties": {
                "pity5": {"type": "integer"},
                "pity4": {"type": "integer"},
                "pity4_pool1": {"type": "integer"},
                "pity4_pool2": {"type": "integer"},
                "pity5_pool1": {"type": "integer"},
                "pity5_pool2": {"type": "integer"},
                "wish_item_id": {"type": "integer"},
                "failed_chosen_item_pulls": {"type": "integer"},
                "failed_featured4_item_pulls": {"type": "integer"},
                "failed_featured_item_pulls": {"type": "integer"},
                "total_pulls": {"type": "integer"}
            }
        },
        "domain.PlayerGachaInfo": {
            "type": "object",
            "properties": {
                "standard_banner": {"$ref": "#/definitions/domain.PlayerBannerState"},
                "event_weapon_banner": {"$ref": "#/definitions/domain.PlayerBannerState"},
                "event_character_banner": {"$ref": "#/definitions/domain.PlayerBannerState"}
            }
        },
        "domain.PulledItem": {
            "type": "object",
            "properties": {
                "item_id": {"type": "integer"},
                "rarity": {"type": "integer"}
            }
        },
        "domain.PullResult": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "banner_id": {"type": "string"},
                "banner_type": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.PulledItem"}},
                "state": {"$ref": "#/definitions/domain.PlayerBannerState"}
            }
        },
        "domain.WishRecord": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "banner_id": {"type": "string"},
                "banner_type": {"type": "string"},
                "item_id": {"type": "integer"},
                "rarity": {"type": "integer"},
                "pulled_at": {"type": "string"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.HistoryResponse": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/domain.WishRecord"}}
            }
        },
        "handler.PullRequest": {
            "type": "object",
            "required": ["banner_id", "player_id", "times"],
            "properties": {
                "player_id": {"type": "string", "maxLength": 100},
                "banner_id": {"type": "string", "maxLength": 100},
                "times": {"type": "integer", "enum": [1, 10]}
            }
        },
        "handler.ReloadResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "banners": {"type": "integer"}
            }
        },
        "handler.SetWishTargetRequest": {
            "type": "object",
            "required": ["banner_id", "player_id"],
            "properties": {
                "player_id": {"type": "string", "maxLength": 100},
                "banner_id": {"type": "string", "maxLength": 100},
                "item_id": {"type": "integer", "minimum": 0}
            }
        },
        "handler.SimulateRequest": {
            "type": "object",
            "required": ["banner_id", "pulls", "trials"],
            "properties": {
                "banner_id": {"type": "string", "maxLength": 100},
                "trials": {"type": "integer", "maximum": 100000, "minimum": 1},
                "pulls": {"type": "integer", "maximum": 2000, "minimum": 1},
                "wish_item_id": {"type": "integer", "minimum": 0},
                "seed": {"type": "integer"}
            }
        },
        "handler.VersionInfo": {
            "type": "object",
            "properties": {
                "version": {"type": "string"},
                "go_version": {"type": "string"},
                "build_time": {"type": "string"},
                "git_commit": {"type": "string"},
                "banners": {"type": "integer"}
            }
        },
        "wish.CacheStats": {
            "type": "object",
            "properties": {
                "size": {"type": "integer"},
                "hits": {"type": "integer"},
                "misses": {"type": "integer"},
                "hit_rate": {"type": "number"}
            }
        },
        "wish.Stats": {
            "type": "object",
            "properties": {
                "mean": {"type": "number"},
                "variance": {"type": "number"},
                "stddev": {"type": "number"},
                "p50": {"type": "number"},
                "p90": {"type": "number"},
                "p99": {"type": "number"}
            }
        },
        "wish.SimulationStats": {
            "type": "object",
            "properties": {
                "trials": {"type": "integer"},
                "pulls_per_trial": {"type": "integer"},
                "five_stars": {"$ref": "#/definitions/wish.Stats"},
                "four_stars": {"$ref": "#/definitions/wish.Stats"},
                "featured_five_stars": {"$ref": "#/definitions/wish.Stats"},
                "first_five_star": {"$ref": "#/definitions/wish.Stats"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WishBot API",
	Description:      "Gacha wish draws with pity, featured guarantees and fate points.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
