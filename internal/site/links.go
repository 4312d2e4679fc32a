package site

import (
	"net/url"
	"path"
)

// Links builds the hrefs of a rendition. The live server filters through
// query strings; the static export has one directory per tag.
type Links struct {
	static bool
}

func (l Links) Home() string     { return "/" }
func (l Links) Projects() string { return l.dir("/projects") }
func (l Links) Style() string    { return "/style.css" }

// Blog links the unfiltered article list
func (l Links) Blog() string { return l.dir("/blog") }

// Article links the detail page of slug
func (l Links) Article(slug string) string {
	return l.dir(path.Join("/blog", url.PathEscape(slug)))
}

// Tag links the article list filtered to tag
func (l Links) Tag(tag string) string {
	if l.static {
		return l.dir(path.Join("/blog/tag", url.PathEscape(tag)))
	}
	return "/blog?" + url.Values{"tag": {tag}}.Encode()
}

func (l Links) dir(p string) string {
	if l.static {
		return p + "/"
	}
	return p
}
