package letter

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyBody は本文が空の下書きに対して返される。
	ErrEmptyBody = errors.New("letter: body is empty")
)

// Letter is a drafted formal letter awaiting a tone rewrite.
type Letter struct {
	body          string
	recipientRank string
	subject       string
}

// New creates a Letter from the drafted body and optional context modifiers.
// The body is kept verbatim so that passthrough mode can return it unchanged;
// it returns ErrEmptyBody when the body is empty after trimming.
func New(body, recipientRank, subject string) (*Letter, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}

	return &Letter{
		body:          body,
		recipientRank: strings.TrimSpace(recipientRank),
		subject:       strings.TrimSpace(subject),
	}, nil
}

// Body は下書きの本文をそのまま返す。
func (l *Letter) Body() string {
	return l.body
}

// RecipientRank は宛先の階級・役職を返す。未指定なら空文字。
func (l *Letter) RecipientRank() string {
	return l.recipientRank
}

// Subject は主題を返す。未指定なら空文字。
func (l *Letter) Subject() string {
	return l.subject
}

// HasRecipientRank は宛先修飾が指定されているかを返す。
func (l *Letter) HasRecipientRank() bool {
	return l.recipientRank != ""
}

// HasSubject は主題修飾が指定されているかを返す。
func (l *Letter) HasSubject() bool {
	return l.subject != ""
}
