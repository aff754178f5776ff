package typocore

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// AnalyzeRequest is the HTTP request body for POST /v1/analyze.
type AnalyzeRequest struct {
	Compared string `json:"compared"`
	Accurate string `json:"accurate"`
}

// AnalyzeResponse is the HTTP response body for POST /v1/analyze: the flat
// JSON rendering of a Text.
type AnalyzeResponse struct {
	Characters []CharacterView `json:"characters"`
}

// CharacterView is the wire shape of one TypedChar.
type CharacterView struct {
	Raw       string `json:"raw"`
	Type      string `json:"type"`
	Intended  string `json:"intended,omitempty"`
	CaseState string `json:"case_state,omitempty"`
}

func toResponse(t Text) AnalyzeResponse {
	chars := make([]CharacterView, len(t))
	for i, c := range t {
		v := CharacterView{
			Raw:  string(c.Raw),
			Type: c.Type.String(),
		}
		if c.Type == Misspell {
			v.Intended = string(c.Intended)
		}
		switch c.CaseState {
		case CaseCorrect:
			v.CaseState = "correct"
		case CaseWrong:
			v.CaseState = "wrong"
		}
		chars[i] = v
	}
	return AnalyzeResponse{Characters: chars}
}

// AnalyzeHandler handles POST /v1/analyze requests: compare two texts and
// return the annotated character stream.
func AnalyzeHandler(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		result := Analyze(req.Compared, req.Accurate, cfg)

		w.Header().Set("Content-Type", "application/json")
		// A Text's Raw characters may contain <, >, or & that a caller
		// wants to render literally, so HTML-escaping stays off — but
		// unlike a one-shot marshal-to-bytes helper, the response is
		// streamed straight to w with no intermediate buffer.
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		enc.Encode(toResponse(result))
	}
}

// HealthHandler handles GET /health requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "typocore",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.0",
  "info": {
    "title": "typocore API",
    "description": "Character-level typo/alignment analysis between a compared text and an accurate text.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/analyze": {
      "post": {
        "summary": "Analyze a compared text against an accurate text",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/AnalyzeRequest" }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Annotated character stream",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/AnalyzeResponse" }
              }
            }
          }
        }
      }
    },
    "/health": {
      "get": { "summary": "Health check", "responses": { "200": { "description": "OK" } } }
    }
  },
  "components": {
    "schemas": {
      "AnalyzeRequest": {
        "type": "object",
        "required": ["compared", "accurate"],
        "properties": {
          "compared": { "type": "string", "description": "The user-entered text" },
          "accurate": { "type": "string", "description": "The known-correct text" }
        }
      },
      "AnalyzeResponse": {
        "type": "object",
        "properties": {
          "characters": {
            "type": "array",
            "items": { "$ref": "#/components/schemas/CharacterView" }
          }
        }
      },
      "CharacterView": {
        "type": "object",
        "properties": {
          "raw": { "type": "string" },
          "type": { "type": "string", "enum": ["correct", "missing", "extra", "swapped(left)", "swapped(right)", "misspell"] },
          "intended": { "type": "string" },
          "case_state": { "type": "string", "enum": ["correct", "wrong"] }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>typocore API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
