package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// templates 在包初始化时解析一次，之后只读，可被多个请求并发执行。
var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

// StaticFS 返回内嵌的静态资源目录（globals.css 等），供路由挂载到 /static。
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("view: static assets missing: %v", err))
	}
	return http.FS(sub)
}

// Page renders a body fragment for the layout.
type Page func() (template.HTML, error)

// RenderPage 先渲染页面片段，再用根布局包裹后一次性写入 w。
// 片段渲染失败时不会向 w 写入任何内容。
func RenderPage(w io.Writer, meta Metadata, page Page) error {
	children, err := page()
	if err != nil {
		return err
	}
	return Layout(w, meta, children)
}

func executeFragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
