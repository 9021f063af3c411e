package messages

import "binviz/internal/convert"

// ImageLoadedMsg reports the end of a file load started with request ID.
type ImageLoadedMsg struct {
	ID      uint64
	Preview *convert.Preview
	Err     error
}
