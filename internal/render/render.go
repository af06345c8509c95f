// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render produces the SPA shell: the HTML document every client
// page boots from. The shell carries the runtime configuration (API base
// URL, route table, active page) so the client bundle never needs to be
// rebuilt when the deployment changes.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"voilib/internal/routes"
)

//go:embed templates/*.html
var templateFS embed.FS

// RouteInfo describes one entry of the route table for the client.
type RouteInfo struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Num  int    `json:"num"`
}

// ClientConfig is the configuration handed to the client bundle.
type ClientConfig struct {
	APIURL string      `json:"api_url"`
	Page   string      `json:"page,omitempty"`
	Dev    bool        `json:"dev"`
	Routes []RouteInfo `json:"routes"`
}

// ShellData holds the values substituted into the shell template.
type ShellData struct {
	Title   string
	Page    routes.Page
	PageNum int
	Config  ClientConfig
}

// RouteTable returns the route table in the shape the client expects.
func RouteTable() []RouteInfo {
	pages := routes.All()
	out := make([]RouteInfo, 0, len(pages))
	for _, p := range pages {
		out = append(out, RouteInfo{Path: p.Path(), Name: p.String(), Num: p.Num()})
	}
	return out
}

// Renderer renders the shell for a fixed API base URL.
type Renderer struct {
	tmpl    *template.Template
	apiURL  string
	devMode bool
}

// New parses the embedded shell template. apiURL is the resolved API base
// URL injected into every shell.
func New(apiURL string, devMode bool) (*Renderer, error) {
	tmpl, err := template.New("index.html").ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse shell template: %w", err)
	}
	return &Renderer{tmpl: tmpl, apiURL: apiURL, devMode: devMode}, nil
}

// APIURL returns the base URL injected into shells.
func (rn *Renderer) APIURL() string {
	return rn.apiURL
}

// Config returns the client configuration for page. A zero-value page name
// is omitted, which is what /config.json serves.
func (rn *Renderer) Config(page string) ClientConfig {
	return ClientConfig{
		APIURL: rn.apiURL,
		Page:   page,
		Dev:    rn.devMode,
		Routes: RouteTable(),
	}
}

// Shell renders the complete shell document for page.
func (rn *Renderer) Shell(page routes.Page) ([]byte, error) {
	data := ShellData{
		Title:   "voilib · " + page.String(),
		Page:    page,
		PageNum: page.Num(),
		Config:  rn.Config(page.String()),
	}

	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return nil, fmt.Errorf("render shell %s: %w", page, err)
	}
	return buf.Bytes(), nil
}
