// Package docslice provides a document-structure extraction engine for
// documentation sites. It resolves sitemap trees into flat URL lists,
// builds heading outlines from HTML pages, extracts bounded
// heading-scoped sections, summarizes pages, and classifies URLs
// against a site scope.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., etree/,
// goquery/, http/).
package docslice
