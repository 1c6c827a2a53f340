// Package docs Swagger 文档，与 controller 中的 swag 注释一致
// 修改接口后可用 swag init -g cmd/main.go -o docs 重新生成
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
		"/api/v1/dispatches": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Dispatch (配送规则)"
				],
				"summary": "配送规则列表",
				"description": "按名称/描述模糊搜索，start 和 limit 同时提供才分页",
				"parameters": [
					{
						"type": "string",
						"description": "搜索文本或过滤 JSON",
						"name": "filter",
						"in": "query"
					},
					{
						"type": "string",
						"description": "排序 JSON",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "偏移",
						"name": "start",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "条数",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResp-model_Dispatch"
						}
					},
					"400": {
						"description": "参数错误",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/dispatch-summaries": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Dispatch (配送规则)"
				],
				"summary": "配送规则基础信息列表",
				"description": "不加载关联，start/limit 各自独立生效",
				"parameters": [
					{
						"type": "string",
						"description": "搜索文本或过滤 JSON",
						"name": "filter",
						"in": "query"
					},
					{
						"type": "string",
						"description": "排序 JSON",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "偏移",
						"name": "start",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "条数",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResp-model_Dispatch"
						}
					}
				}
			}
		},
		"/api/v1/shipping-costs": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Dispatch (配送规则)"
				],
				"summary": "带关联的配送规则列表",
				"description": "包含国家、分类、节假日、支付方式和扩展属性",
				"parameters": [
					{
						"type": "string",
						"description": "搜索文本或过滤 JSON",
						"name": "filter",
						"in": "query"
					},
					{
						"type": "string",
						"description": "排序 JSON",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "偏移",
						"name": "start",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "条数",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResp-model_Dispatch"
						}
					}
				}
			}
		},
		"/api/v1/shipping-costs/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Dispatch (配送规则)"
				],
				"summary": "配送规则详情",
				"parameters": [
					{
						"type": "integer",
						"description": "配送规则ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Dispatch"
						}
					},
					"404": {
						"description": "不存在",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/costs-matrix/{dispatchId}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"CostsMatrix (运费矩阵)"
				],
				"summary": "运费矩阵",
				"parameters": [
					{
						"type": "integer",
						"description": "配送规则ID",
						"name": "dispatchId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResp-model_ShippingCost"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"CostsMatrix (运费矩阵)"
				],
				"summary": "清空运费矩阵",
				"parameters": [
					{
						"type": "integer",
						"description": "配送规则ID",
						"name": "dispatchId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PurgeResp"
						}
					},
					"429": {
						"description": "冷却中",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/payments": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"MasterData (基础数据)"
				],
				"summary": "支付方式列表",
				"parameters": [
					{
						"type": "string",
						"description": "搜索文本或过滤 JSON",
						"name": "filter",
						"in": "query"
					},
					{
						"type": "string",
						"description": "排序 JSON",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "偏移",
						"name": "start",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "条数",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResp-model_Payment"
						}
					}
				}
			}
		},
		"/api/v1/countries": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"MasterData (基础数据)"
				],
				"summary": "国家列表",
				"parameters": [
					{
						"type": "string",
						"description": "搜索文本或过滤 JSON",
						"name": "filter",
						"in": "query"
					},
					{
						"type": "string",
						"description": "排序 JSON",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "偏移",
						"name": "start",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "条数",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResp-model_Country"
						}
					}
				}
			}
		},
		"/api/v1/holidays": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"MasterData (基础数据)"
				],
				"summary": "节假日列表",
				"parameters": [
					{
						"type": "string",
						"description": "搜索文本或过滤 JSON",
						"name": "filter",
						"in": "query"
					},
					{
						"type": "string",
						"description": "排序 JSON",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "偏移",
						"name": "start",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "条数",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListResp-model_Holiday"
						}
					}
				}
			}
		},
		"/api/v1/maintenance/orphaned-dispatches": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Maintenance (维护)"
				],
				"summary": "限定店铺已删除的配送规则",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.OrphanReportResp"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.ListResp-model_Country": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Country"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.ListResp-model_Dispatch": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Dispatch"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.ListResp-model_Holiday": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Holiday"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.ListResp-model_Payment": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Payment"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.ListResp-model_ShippingCost": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.ShippingCost"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.OrphanDispatchItem": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"multi_shop_id": {
					"type": "integer"
				}
			}
		},
		"dto.OrphanReportResp": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.OrphanDispatchItem"
					}
				},
				"checked_at": {
					"type": "string"
				}
			}
		},
		"dto.PurgeResp": {
			"type": "object",
			"properties": {
				"dispatch_id": {
					"type": "integer"
				},
				"deleted": {
					"type": "integer"
				}
			}
		},
		"model.Category": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"parent_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"active": {
					"type": "boolean"
				}
			}
		},
		"model.Country": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"iso": {
					"type": "string"
				},
				"iso3": {
					"type": "string"
				},
				"area_id": {
					"type": "integer"
				},
				"position": {
					"type": "integer"
				},
				"active": {
					"type": "boolean"
				}
			}
		},
		"model.Dispatch": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"type": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"comment": {
					"type": "string"
				},
				"active": {
					"type": "boolean"
				},
				"position": {
					"type": "integer"
				},
				"calculation": {
					"type": "integer"
				},
				"surcharge_calculation": {
					"type": "integer"
				},
				"tax_calculation": {
					"type": "integer"
				},
				"shipping_free": {
					"type": "number"
				},
				"multi_shop_id": {
					"type": "integer"
				},
				"customer_group_id": {
					"type": "integer"
				},
				"bind_weight_from": {
					"type": "number"
				},
				"bind_weight_to": {
					"type": "number"
				},
				"bind_price_from": {
					"type": "number"
				},
				"bind_price_to": {
					"type": "number"
				},
				"status_link": {
					"type": "string"
				},
				"countries": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Country"
					}
				},
				"categories": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Category"
					}
				},
				"holidays": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Holiday"
					}
				},
				"payments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Payment"
					}
				},
				"attribute": {
					"$ref": "#/definitions/model.DispatchAttribute"
				}
			}
		},
		"model.DispatchAttribute": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"dispatch_id": {
					"type": "integer"
				},
				"extra": {
					"type": "object",
					"additionalProperties": true
				}
			}
		},
		"model.Holiday": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"calculation": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"model.Payment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"position": {
					"type": "integer"
				},
				"active": {
					"type": "boolean"
				},
				"debit_percent": {
					"type": "number"
				},
				"surcharge": {
					"type": "number"
				}
			}
		},
		"model.ShippingCost": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"dispatch_id": {
					"type": "integer"
				},
				"from": {
					"type": "number"
				},
				"value": {
					"type": "number"
				},
				"factor": {
					"type": "number"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Bearer {token}，由 dispatch-admin token 签发",
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
	Title:            "Dispatch Admin API",
	Description:      "配送规则、运费矩阵及基础数据管理接口",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
