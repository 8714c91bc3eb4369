package errors

import (
	"net/http"
)

func BadRequest() Enricher   { return WithCode(http.StatusBadRequest) }
func Unauthorized() Enricher { return WithCode(http.StatusUnauthorized) }
func Forbidden() Enricher    { return WithCode(http.StatusForbidden) }
func NotFound() Enricher     { return WithCode(http.StatusNotFound) }

func IsUnauthorized(err error) bool { return Code(err) == http.StatusUnauthorized }
func IsNotFound(err error) bool     { return Code(err) == http.StatusNotFound }
