// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package routes holds the client-side route table: the fixed set of pages
// the voilib client knows about, their paths, and the navigation index
// ("page number") each one highlights.
package routes

import "fmt"

// Page identifies one client page. The set is closed; add a constant and a
// table entry together.
type Page int

const (
	Home Page = iota
	Query
	About
	Content
)

type entry struct {
	path string
	name string
	num  int
}

// table is indexed by Page.
var table = [...]entry{
	Home:    {path: "/", name: "home", num: -1},
	Query:   {path: "/query", name: "query", num: 0},
	About:   {path: "/about", name: "about", num: 1},
	Content: {path: "/content", name: "content", num: 3},
}

var byPath = func() map[string]Page {
	m := make(map[string]Page, len(table))
	for i, e := range table {
		m[e.path] = Page(i)
	}
	return m
}()

// All returns every page in table order.
func All() []Page {
	pages := make([]Page, len(table))
	for i := range table {
		pages[i] = Page(i)
	}
	return pages
}

// Lookup finds the page served at path. Matching is exact.
func Lookup(path string) (Page, bool) {
	p, ok := byPath[path]
	return p, ok
}

// PageNum returns the navigation index for path. ok is false for paths
// outside the table.
func PageNum(path string) (num int, ok bool) {
	p, ok := Lookup(path)
	if !ok {
		return 0, false
	}
	return p.Num(), true
}

func (p Page) valid() bool { return p >= 0 && int(p) < len(table) }

// Path returns the URL path of the page.
func (p Page) Path() string {
	if !p.valid() {
		return ""
	}
	return table[p].path
}

// Num returns the navigation index of the page.
func (p Page) Num() int {
	if !p.valid() {
		return 0
	}
	return table[p].num
}

// String returns the page name ("home", "query", ...).
func (p Page) String() string {
	if !p.valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return table[p].name
}
