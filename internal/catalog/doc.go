// Package catalog holds the closed set of declared icons and their embedded
// vector content.
//
// A catalog is declared once from a list of icon names and an fs.FS laid out
// as <base>/<slug>/<file>.svg. Lookups are keyed by identity and canonical
// slug and always succeed: pairs without an authored asset degrade to an
// empty placeholder document instead of an error.
package catalog
