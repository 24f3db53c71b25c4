package httpx

import (
	"embed"
	"html/template"
	"strings"

	"github.com/swtraders/admin/internal/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"price": catalog.FormatPrice,
	"statusClass": func(s catalog.OrderStatus) string {
		return "status-" + strings.ToLower(string(s))
	},
}).ParseFS(templateFS, "templates/*.html"))
