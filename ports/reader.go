package ports

import (
	"predmaint/domain/frame"
)

// DatasetReader loads a raw dataset into a frame. Implementations decide
// the file format; the first row of the source is always the header.
type DatasetReader interface {
	ReadFrame() (*frame.Frame, error)
	Path() string
}
