package swagger

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Config controls the rendered Swagger UI page
type Config struct {
	Title         string
	SwaggerDocURL string
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui-bundle.css" />
  <style>
    html { box-sizing: border-box; overflow-y: scroll; }
    *, *:before, *:after { box-sizing: inherit; }
    body { margin: 0; background: #fafafa; }
  </style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "{{.SwaggerDocURL}}",
        dom_id: "#swagger-ui",
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
        layout: "BaseLayout"
      });
    };
  </script>
</body>
</html>`

// ServeUI renders the Swagger UI page pointed at the given spec URL
func ServeUI(cfg Config) gin.HandlerFunc {
	tmpl := template.Must(template.New("swagger").Parse(swaggerHTML))
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(c.Writer, cfg); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	}
}
