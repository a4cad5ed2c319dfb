package prompt

import "errors"

// ErrAborted is returned when the user interrupts a question.
var ErrAborted = errors.New("prompt: aborted")

// ErrNoSelection is returned when a driver answers a select question with an
// index outside its options.
var ErrNoSelection = errors.New("prompt: no option selected")
