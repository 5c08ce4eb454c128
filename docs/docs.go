// Package docs contiene la especificación Swagger servida en /swagger.
// Mantenida a mano (el formato sigue el de swag init para que la UI la
// consuma igual).
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
        "/health": {
            "get": {
                "summary": "Liveness",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/api/config": {
            "get": {
                "summary": "Estado de configuración de endpoints",
                "produces": ["application/json"],
                "responses": {"200": {"description": "flags hasPatientsUrl, hasConsultationsUrl, hasPrescriptionsUrl, hasAuthUrl"}}
            },
            "put": {
                "summary": "Guarda el objeto de configuración completo",
                "consumes": ["application/json"],
                "responses": {"200": {"description": "guardado"}, "400": {"description": "URL inválida"}}
            }
        },
        "/api/login": {
            "post": {
                "summary": "Login contra la hoja de usuarios",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "token + usuario + rol"}, "401": {"description": "credenciales inválidas"}}
            }
        },
        "/api/patients": {
            "get": {
                "summary": "Lista todos los pacientes",
                "produces": ["application/json"],
                "responses": {"200": {"description": "array de pacientes"}, "429": {"description": "rate limited"}, "502": {"description": "script mal publicado o error de comunicación"}}
            },
            "post": {
                "summary": "Upsert de paciente (sin id crea con uuid nuevo)",
                "consumes": ["application/json"],
                "responses": {"200": {"description": "actualizado"}, "201": {"description": "creado"}}
            }
        },
        "/api/patients/{id}": {
            "put": {
                "summary": "Upsert de paciente por id",
                "responses": {"200": {"description": "actualizado"}}
            },
            "delete": {
                "summary": "Borrado en cascada (recetas y consultas primero)",
                "responses": {"200": {"description": "reporte de cascada"}, "404": {"description": "id no encontrado"}, "502": {"description": "cascada abortada, con conteos"}}
            }
        },
        "/api/patients/{id}/report": {
            "get": {
                "summary": "Historia clínica en PDF",
                "produces": ["application/pdf"],
                "responses": {"200": {"description": "pdf"}, "404": {"description": "paciente no encontrado"}}
            }
        },
        "/api/consultations": {
            "get": {
                "summary": "Lista consultas (filtro opcional ?pacienteId=)",
                "responses": {"200": {"description": "array de consultas"}}
            },
            "post": {
                "summary": "Upsert de consulta",
                "responses": {"200": {"description": "actualizado"}, "201": {"description": "creado"}}
            }
        },
        "/api/consultations/{id}": {
            "put": {"summary": "Upsert de consulta por id", "responses": {"200": {"description": "actualizado"}}},
            "delete": {"summary": "Borra una consulta", "responses": {"204": {"description": "borrado"}, "404": {"description": "id no encontrado"}}}
        },
        "/api/prescriptions": {
            "get": {
                "summary": "Lista recetas (filtro opcional ?pacienteId=)",
                "responses": {"200": {"description": "array de recetas"}}
            },
            "post": {
                "summary": "Upsert de receta",
                "responses": {"200": {"description": "actualizado"}, "201": {"description": "creado"}}
            }
        },
        "/api/prescriptions/{id}": {
            "put": {"summary": "Upsert de receta por id", "responses": {"200": {"description": "actualizado"}}},
            "delete": {"summary": "Borra una receta", "responses": {"204": {"description": "borrado"}, "404": {"description": "id no encontrado"}}}
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PawMed API",
	Description:      "Registro clínico veterinario respaldado en Google Sheets",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
