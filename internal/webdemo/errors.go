package webdemo

import "errors"

var errNoEngine = errors.New("spectrogram engine not initialized")
