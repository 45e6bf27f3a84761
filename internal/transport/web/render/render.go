// Package render отвечает за серверный HTML: именованный фрагмент вида
// вставляется в общий лейаут со слотами заголовка, сообщения и данных.
// Данные сериализуются в JSON для клиентского скрипта.
package render

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DefaultTitle подставляется когда вид не передал свой заголовок.
const DefaultTitle = "Dashboard"

var viewNames = []string{
	"index",
	"login",
	"signup",
	"dashboard",
	"account",
	"order",
	"orders",
	"admin_login",
	"admin_dashboard",
	"admin_orders",
	"admin_users",
	"admin_sort",
	"admin_update_order",
}

type Params struct {
	Title   string
	Message string
	Data    any
}

type Renderer struct {
	views map[string]*template.Template
}

// New парсит лейаут и все фрагменты видов из встроенных шаблонов. Ошибка
// здесь фатальна для приложения: битый шаблон это ошибка сборки, а не
// рантайма.
func New() (*Renderer, error) {
	layout, layoutErr := template.ParseFS(templatesFS, "templates/layout.html")
	if layoutErr != nil {
		return nil, fmt.Errorf("parsing layout template: %s", layoutErr.Error())
	}

	views := make(map[string]*template.Template, len(viewNames))
	for _, name := range viewNames {
		view, cloneErr := layout.Clone()
		if cloneErr != nil {
			return nil, fmt.Errorf("cloning layout for view %s: %s", name, cloneErr.Error())
		}
		if _, parseErr := view.ParseFS(templatesFS, "templates/"+name+".html"); parseErr != nil {
			return nil, fmt.Errorf("parsing view %s: %s", name, parseErr.Error())
		}
		views[name] = view
	}
	return &Renderer{views: views}, nil
}

// HTML рендерит вид внутри лейаута. Заголовок по умолчанию DefaultTitle,
// сообщение по умолчанию пустое, данные - пустой объект.
func (r *Renderer) HTML(c *gin.Context, status int, view string, params Params) {
	tmpl, ok := r.views[view]
	if !ok {
		_ = c.AbortWithError(500, fmt.Errorf("unknown view %q", view)) //nolint:mnd
		return
	}

	if params.Title == "" {
		params.Title = DefaultTitle
	}
	if params.Data == nil {
		params.Data = struct{}{}
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, "layout.html", params); err != nil {
		_ = c.Error(err)
	}
}
