package gdbmi

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/schreinerhq/gdbmi/internal/event"
	"github.com/schreinerhq/gdbmi/internal/mi"
)

// pendingCommand is one outstanding result-record obligation. It sits in a
// strict FIFO queue: the debugger completes commands in submission order,
// never by token correlation, so completion pops the head regardless of
// what token the result record carries.
type pendingCommand struct {
	token string
	body  string
	done  chan commandResult
}

type commandResult struct {
	class mi.ResultClass
	data  mi.Tuple
	err   error
}

// queue owns the single outbound writer and the FIFO of commands awaiting a
// result record. A plain slice where only the head may ever complete,
// rather than a token-keyed map that would let responses complete out of
// submission order.
type queue struct {
	log *zap.Logger

	mu       sync.Mutex
	out      io.Writer
	pending  []*pendingCommand
	tokenSeq int64
	ended    bool

	closer     io.Closer
	teardownCh chan struct{}
	loopDone   chan struct{}
	fatalErr   error

	subMu sync.Mutex
	subs  []func(event.Event)
}

func newQueue(log *zap.Logger) *queue {
	if log == nil {
		log = zap.NewNop()
	}
	return &queue{
		log:        log,
		teardownCh: make(chan struct{}),
		loopDone:   make(chan struct{}),
	}
}

// start launches the single reader goroutine that owns all parsing and
// dispatch. in must be the debugger's stdout pipe (or equivalent); it is
// closed exactly once when the session tears down.
func (q *queue) start(in io.ReadCloser, out io.Writer) {
	q.mu.Lock()
	q.out = out
	q.closer = in
	q.mu.Unlock()
	go q.readLoop(in)
}

// subscribe registers fn to observe every dispatched event. It returns an
// unsubscribe function.
func (q *queue) subscribe(fn func(event.Event)) func() {
	q.subMu.Lock()
	defer q.subMu.Unlock()
	q.subs = append(q.subs, fn)
	idx := len(q.subs) - 1
	return func() {
		q.subMu.Lock()
		defer q.subMu.Unlock()
		q.subs[idx] = nil
	}
}

func (q *queue) dispatch(ev event.Event) {
	q.subMu.Lock()
	subs := make([]func(event.Event), len(q.subs))
	copy(subs, q.subs)
	q.subMu.Unlock()
	for _, fn := range subs {
		if fn != nil {
			fn(ev)
		}
	}
}

// submit enqueues one command body (without a leading token) and blocks
// until its result record arrives, the session ends, or the transport
// fails. Multiple goroutines may call submit concurrently; only the
// command at the head of the queue is ever written to the wire.
func (q *queue) submit(body string) (mi.ResultClass, mi.Tuple, error) {
	q.mu.Lock()
	if q.ended {
		q.mu.Unlock()
		return "", nil, errEndOfSession{}
	}
	q.tokenSeq++
	token := strconv.FormatInt(q.tokenSeq, 10)
	cmd := &pendingCommand{token: token, body: body, done: make(chan commandResult, 1)}
	wasEmpty := len(q.pending) == 0
	q.pending = append(q.pending, cmd)
	if wasEmpty {
		q.writeLocked(token, body)
	}
	q.mu.Unlock()

	res := <-cmd.done
	return res.class, res.data, res.err
}

// writeLocked must be called with q.mu held.
func (q *queue) writeLocked(token, body string) {
	line := fmt.Sprintf("%s-%s\n", token, body)
	if _, err := io.WriteString(q.out, line); err != nil {
		q.log.Error("failed writing command", zap.String("body", body), zap.Error(err))
	}
}

func (q *queue) readLoop(in io.Reader) {
	defer close(q.loopDone)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, err := mi.ParseLine(line)
		if err != nil {
			q.log.Error("fatal parse error", zap.String("line", line), zap.Error(err))
			q.teardown(err)
			return
		}
		q.handleRecord(rec)
	}
	if err := scanner.Err(); err != nil {
		q.log.Debug("debugger output closed", zap.Error(err))
	}
	q.teardown(errEndOfSession{})
}

func (q *queue) handleRecord(rec mi.Record) {
	switch rec.Type {
	case mi.RecordPrompt:
		return
	case mi.RecordResult:
		q.completeHead(rec)
	case mi.RecordAsyncExec:
		for _, ev := range event.FromExec(rec.Class, rec.Data, q.log) {
			q.dispatch(ev)
		}
	case mi.RecordAsyncNotify:
		for _, ev := range event.FromNotify(rec.Class, rec.Data, q.log) {
			q.dispatch(ev)
		}
	case mi.RecordAsyncStatus:
		q.log.Debug("async status record", zap.String("class", rec.Class))
	case mi.RecordStreamConsole:
		q.dispatch(event.Event{Kind: event.KindConsoleOutput, Payload: rec.Stream})
	case mi.RecordStreamTarget:
		q.dispatch(event.Event{Kind: event.KindTargetOutput, Payload: rec.Stream})
	case mi.RecordStreamLog:
		q.dispatch(event.Event{Kind: event.KindLogOutput, Payload: rec.Stream})
	}
}

func (q *queue) completeHead(rec mi.Record) {
	q.mu.Lock()
	if len(q.pending) == 0 {
		q.mu.Unlock()
		q.log.Warn("result record with no pending command", zap.String("class", string(rec.ResultClass)))
		return
	}
	head := q.pending[0]
	q.pending = q.pending[1:]
	if rec.Token != "" && rec.Token != head.token {
		q.log.Warn("result token does not match head of queue",
			zap.String("got", rec.Token), zap.String("want", head.token))
	}

	var res commandResult
	if rec.ResultClass == mi.ResultError {
		m := mi.ToMapping(rec.Data)
		res = commandResult{err: &CommandFailed{
			Message: m.Str("msg", ""),
			Code:    m.Str("code", ""),
			Command: head.body,
			Token:   head.token,
		}}
	} else {
		res = commandResult{class: rec.ResultClass, data: rec.Data}
	}

	var next *pendingCommand
	if len(q.pending) > 0 {
		next = q.pending[0]
		q.writeLocked(next.token, next.body)
	}
	q.mu.Unlock()

	head.done <- res
}

// end tears the session down. When notifyDebugger is true it first submits
// "gdb-exit" and waits for its outcome (success or transport failure)
// before closing the reader.
func (q *queue) end(notifyDebugger bool) error {
	if notifyDebugger {
		_, _, _ = q.submit("gdb-exit")
	}
	q.mu.Lock()
	q.ended = true
	closer := q.closer
	q.closer = nil
	q.mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	<-q.loopDone
	return q.fatalErr
}

// teardown fails every still-pending command and records the terminal
// error exactly once. It is idempotent: a parse error and a subsequent
// closed-pipe read both call it, only the first sticks.
func (q *queue) teardown(err error) {
	q.mu.Lock()
	if q.fatalErr == nil {
		q.fatalErr = err
	}
	q.ended = true
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cmd := range pending {
		cmd.done <- commandResult{err: err}
	}
}
