// Package docs holds the Swagger document served under /swagger.
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
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    }
                }
            }
        },
        "/questions/generate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Generate interview questions",
                "parameters": [
                    {
                        "description": "topic, difficulty and optional count",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/question.GenerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/question.GenerateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    }
                }
            }
        },
        "/questions/evaluate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Score an answer",
                "parameters": [
                    {
                        "description": "question, answer and context",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/question.EvaluateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/question.Evaluation"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    }
                }
            }
        },
        "/questions/topics": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Suggested topics and difficulties",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/question.TopicsResponse"
                        }
                    }
                }
            }
        },
        "/progress": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Most recent sessions, newest first",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/progress.Session"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Save a completed interview session",
                "parameters": [
                    {
                        "description": "completed session",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/progress.CreateSessionDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/progress.Session"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    }
                }
            }
        },
        "/progress/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Statistics over all of the caller's sessions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/progress.StatsSummary"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    }
                }
            }
        },
        "/progress/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "One session owned by the caller",
                "parameters": [
                    {
                        "type": "string",
                        "description": "session id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/progress.Session"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/message"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "message": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "question.GenerateRequest": {
            "type": "object",
            "required": ["topic", "difficulty"],
            "properties": {
                "topic": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string",
                    "enum": ["Easy", "Medium", "Hard"]
                },
                "numberOfQuestions": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 20
                }
            }
        },
        "question.Question": {
            "type": "object",
            "properties": {
                "question": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                }
            }
        },
        "question.GenerateResponse": {
            "type": "object",
            "properties": {
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/question.Question"
                    }
                },
                "topic": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                }
            }
        },
        "question.EvaluateRequest": {
            "type": "object",
            "required": ["question", "answer"],
            "properties": {
                "question": {
                    "type": "string"
                },
                "answer": {
                    "type": "string"
                },
                "topic": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                }
            }
        },
        "question.Evaluation": {
            "type": "object",
            "properties": {
                "score": {
                    "type": "number"
                },
                "feedback": {
                    "type": "string"
                }
            }
        },
        "question.TopicsResponse": {
            "type": "object",
            "properties": {
                "topics": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "difficulties": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "strict": {
                    "type": "boolean"
                }
            }
        },
        "progress.SessionQuestionDTO": {
            "type": "object",
            "required": ["question"],
            "properties": {
                "question": {
                    "type": "string"
                },
                "userAnswer": {
                    "type": "string"
                },
                "evaluation": {
                    "type": "string"
                },
                "score": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 10
                }
            }
        },
        "progress.CreateSessionDTO": {
            "type": "object",
            "required": ["topic", "difficulty"],
            "properties": {
                "topic": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/progress.SessionQuestionDTO"
                    }
                },
                "totalScore": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 10
                }
            }
        },
        "progress.Session": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "topic": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "totalScore": {
                    "type": "number"
                },
                "completedAt": {
                    "type": "string"
                },
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/progress.SessionQuestionDTO"
                    }
                }
            }
        },
        "progress.StatsSummary": {
            "type": "object",
            "properties": {
                "totalSessions": {
                    "type": "integer"
                },
                "averageScore": {
                    "type": "number"
                },
                "topicBreakdown": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "difficultyBreakdown": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Interview Coach API",
	Description:      "AI-generated interview questions, answer scoring and practice history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
