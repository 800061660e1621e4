package errors

import "errors"

var (
	// Input errors ✍️
	ErrInvalidIdentity = errors.New("❌ invalid package identity")
	ErrInvalidLayout   = errors.New("❌ invalid project layout")
	ErrUnknownArchive  = errors.New("❌ unknown archive format")

	// Filesystem errors 📂
	ErrSourceMissing     = errors.New("❌ source path missing")
	ErrDestinationExists = errors.New("❌ destination already exists")

	// Templating errors 🔤
	ErrEmptyMapping = errors.New("❌ empty template mapping")

	// Icon errors 🖼️
	ErrTemplateLoad      = errors.New("❌ failed to load icon template")
	ErrTemplateNotSquare = errors.New("❌ icon template is not square")
	ErrTargetTooSmall    = errors.New("❌ target size smaller than base size")
)
