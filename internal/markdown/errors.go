package markdown

import "errors"

var (
	ErrParse = errors.New("markdown parse error")
)
