package services

import (
	"errors"
	"fmt"
)

// Kind, servis hatasının HTTP katmanında hangi duruma çevrileceğini belirler.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func ValidationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundError(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func UnauthorizedError(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func ForbiddenError(msg string) error    { return &Error{Kind: KindForbidden, Msg: msg} }

// KindOf sınıflandırılmamış hatalar için KindInternal döner.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

const (
	msgCategoryNotFound = "Category not found"
	msgCategoryExists   = "Category already exists"
	msgPostNotFound     = "Post not found"
	msgCommentNotFound  = "Comment not found"
	msgMessageNotFound  = "Message not found"
	msgAuthRequired     = "Authentication required"
	msgNotAuthorized    = "Not authorized"
	msgAllFields        = "All fields are required"
)
