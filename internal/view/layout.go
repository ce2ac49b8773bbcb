package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
)

const (
	// SiteTitle 是文档 <title> 的默认值。
	SiteTitle = "Aiwah Infinity Chat"
	// SiteDescription 是 <meta name="description"> 的默认值。
	SiteDescription = "Your self-hosted business operating system"
)

// Metadata 描述根布局输出到文档头部的信息。
type Metadata struct {
	Title       string
	Description string
}

// DefaultMetadata 返回站点级的标题与描述。
func DefaultMetadata() Metadata {
	return Metadata{Title: SiteTitle, Description: SiteDescription}
}

func (m Metadata) withDefaults() Metadata {
	if strings.TrimSpace(m.Title) == "" {
		m.Title = SiteTitle
	}
	if strings.TrimSpace(m.Description) == "" {
		m.Description = SiteDescription
	}
	return m
}

type layoutData struct {
	Meta     Metadata
	Children template.HTML
}

// Layout writes the shared document shell with children placed verbatim in <body>.
// Empty metadata fields fall back to DefaultMetadata.
func Layout(w io.Writer, meta Metadata, children template.HTML) error {
	var buf bytes.Buffer
	data := layoutData{Meta: meta.withDefaults(), Children: children}
	if err := templates.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render layout: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}
