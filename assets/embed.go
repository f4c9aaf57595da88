// Package assets embeds the default word lists so the binaries run without
// any files configured.
package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

// Answers opens the embedded target-word list.
func Answers() (io.ReadCloser, error) { return FS.Open(AnswersFile) }

// Allowed opens the embedded list of extra valid guesses.
func Allowed() (io.ReadCloser, error) { return FS.Open(AllowedFile) }
