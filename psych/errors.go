package psych

import "errors"

// ErrEmptyFeedback rejects saving a blank observation.
var ErrEmptyFeedback = errors.New("escreva uma avaliação antes de salvar")
