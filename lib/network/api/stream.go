package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	observable "github.com/GianlucaGuarini/go-observable"

	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/network/api/resource"
	"boscoin.io/council/lib/network/httputils"
	"boscoin.io/council/lib/node/runner"
)

const DefaultContentType = "application/json"

// EventStream writes one json line per observed event until the client
// goes away.
type EventStream struct {
	contentType string
	renderFunc  RenderFunc
	request     *http.Request
	writer      http.ResponseWriter
	flusher     http.Flusher
	err         error
	rendered    bool

	observable *observable.Observable
	event      string
	onFunc     func(args ...interface{})
	stop       chan struct{}
	stopOnce   sync.Once
}

// RenderFunc gets the event name first and the triggered values after it.
type RenderFunc func(args ...interface{}) ([]byte, error)

// RenderResourceFunc renders accounts and transaction results as their
// resource.
var RenderResourceFunc = func(args ...interface{}) ([]byte, error) {
	if len(args) <= 1 {
		return nil, fmt.Errorf("render: value is empty")
	}

	switch v := args[1].(type) {
	case *ledger.Account:
		return json.Marshal(resource.NewAccount(v).Resource())
	case runner.TransactionResult:
		return json.Marshal(resource.NewTransaction(v).Resource())
	}

	return json.Marshal(args[1])
}

func NewEventStream(w http.ResponseWriter, r *http.Request, renderFunc RenderFunc, ct string) *EventStream {
	es := &EventStream{
		request:     r,
		writer:      w,
		renderFunc:  renderFunc,
		contentType: ct,
	}

	if flusher, ok := w.(http.Flusher); !ok {
		es.err = fmt.Errorf("http: can't do chunked response")
	} else {
		es.flusher = flusher
	}

	return es
}

// Render writes `args` right away.
func (s *EventStream) Render(args ...interface{}) {
	if s.err != nil {
		return
	}

	bs, err := s.renderFunc(append([]interface{}{"pre"}, args...)...)
	if err != nil {
		bs = s.errMessage(err)
	}

	s.write(bs)
}

func (s *EventStream) write(bs []byte) {
	if !s.rendered {
		s.writer.Header().Set("Content-Type", s.contentType)
		s.rendered = true
	}

	fmt.Fprintf(s.writer, "%s\n", bs)
	s.flusher.Flush()
}

// Start registers the observer and returns the blocking loop. It lets a
// caller render the current value after registering, so no event is lost
// in between. `Stop` must be called when the loop is not run.
//
// 	es := NewEventStream(w, r, RenderResourceFunc, DefaultContentType)
// 	run := es.Start(observer.AccountObserver, "address-"+address)
// 	es.Render(account)
// 	run()
func (s *EventStream) Start(ob *observable.Observable, events ...string) func() {
	if s.err != nil {
		httputils.WriteJSONError(s.writer, s.err)
		return func() {}
	}

	msg := make(chan []byte)
	s.observable = ob
	s.event = strings.Join(events, " ")
	s.stop = make(chan struct{})

	s.onFunc = func(args ...interface{}) {
		payload, err := s.renderFunc(append([]interface{}{s.event}, args...)...)
		if err != nil {
			payload = s.errMessage(err)
		}

		select {
		case msg <- payload:
		case <-s.stop:
		}
	}
	ob.On(s.event, s.onFunc)

	return func() {
		defer s.Stop()

		for {
			select {
			case payload := <-msg:
				s.write(payload)
			case <-s.request.Context().Done():
				return
			}
		}
	}
}

// Stop unregisters the observer.
func (s *EventStream) Stop() {
	if s.observable == nil {
		return
	}

	s.stopOnce.Do(func() {
		close(s.stop)
		s.observable.Off(s.event, s.onFunc)
	})
}

func (s *EventStream) errMessage(err error) []byte {
	b, err := json.Marshal(httputils.NewErrorProblem(err, httputils.StatusCode(err)))
	if err != nil {
		return []byte{}
	}

	return b
}
