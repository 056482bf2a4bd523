package gdbmi

import (
	"fmt"

	"github.com/schreinerhq/gdbmi/internal/extract"
)

// GetThread returns the single thread identified by id.
func (s *Session) GetThread(id int) (extract.Thread, error) {
	body := fmt.Sprintf("thread-info %d", id)
	m, err := s.submitDone(body)
	if err != nil {
		return extract.Thread{}, err
	}
	v, ok := m["threads"]
	if !ok {
		return extract.Thread{}, &MalformedResponse{Message: "missing threads field", Command: body}
	}
	multi, err := extract.ExtractThreads(v, m["current-thread-id"])
	if err != nil {
		return extract.Thread{}, err
	}
	if len(multi.All) == 0 {
		return extract.Thread{}, &MalformedResponse{Message: "empty threads list", Command: body}
	}
	return multi.All[0], nil
}

// GetThreads lists every thread the debugger knows about.
func (s *Session) GetThreads() (extract.MultiThread, error) {
	m, err := s.submitDone("thread-info")
	if err != nil {
		return extract.MultiThread{}, err
	}
	v, ok := m["threads"]
	if !ok {
		return extract.MultiThread{}, &MalformedResponse{Message: "missing threads field", Command: "thread-info"}
	}
	return extract.ExtractThreads(v, m["current-thread-id"])
}
