package mock

import "readflow"

var _ readflow.MimeDispatcher = (*MimeDispatcher)(nil)

// MimeDispatcher is a mock implementation of readflow.MimeDispatcher.
type MimeDispatcher struct {
	DispatchFn func(contentType string) readflow.MimeInfo
}

func (d *MimeDispatcher) Dispatch(contentType string) readflow.MimeInfo {
	return d.DispatchFn(contentType)
}
