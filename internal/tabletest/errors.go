package tabletest

import "errors"

var ErrNoClient = errors.New("no websocket client connected")
