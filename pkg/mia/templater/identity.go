// Package templater rebrands the skeleton Android project: it copies the
// skeleton, substitutes placeholder tokens and moves the Java package
// directories to the new namespace.
package templater

import (
	"strings"
)

// Identity names the package a generated app is published under, e.g.
// de.horsimann.tea for the app "Tea" of horsimann.de.
type Identity struct {
	Namespace string `json:"namespace" validate:"required,excludes=_"`
	Domain    string `json:"domain" validate:"required,excludes=_"`
	AppName   string `json:"app" validate:"required,excludes=_"`
}

// AppLower is the lowercase app identifier used in package and directory names.
func (id Identity) AppLower() string {
	return strings.ToLower(id.AppName)
}

// Underscored joins the package parts with "_", as used by JNI symbol names.
func (id Identity) Underscored() string {
	return id.join("_")
}

// Dotted is the Java package name.
func (id Identity) Dotted() string {
	return id.join(".")
}

// Slashed is the package path below the Java source root.
func (id Identity) Slashed() string {
	return id.join("/")
}

func (id Identity) join(sep string) string {
	return strings.Join([]string{id.Namespace, id.Domain, id.AppLower()}, sep)
}

// Validate checks the identity fields.
func (id Identity) Validate() error {
	return checkStruct(id, "package identity")
}
