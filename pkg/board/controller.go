package board

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"todoboard/pkg/task"
)

// User-facing error messages. Failures are never distinguished further.
const (
	FetchFailedMessage  = "Failed to fetch todos"
	CreateFailedMessage = "Error adding todo"
)

// Remote is the task-list service as seen by the controller.
type Remote interface {
	List(ctx context.Context, limit int) ([]task.Task, error)
	Create(ctx context.Context, d task.Draft) (task.Task, error)
}

// State is the whole client state. Only Controller.Update writes to it.
type State struct {
	Store  *Store
	Filter Filter
	Draft  string
	Busy   bool
	Error  string

	errSeq int
}

// Options tunes a Controller. Zero values pick the defaults noted per field.
type Options struct {
	FetchLimit int           // default 100
	ErrorTTL   time.Duration // default 3s

	Now       func() time.Time                 // default time.Now
	Random    func() float64                   // in [0,1); default rand.Float64
	AfterFunc func(d time.Duration, f func()) // default time.AfterFunc

	// Notify is called from the sending goroutine each time a message lands
	// in the inbox, e.g. to wake the UI loop.
	Notify func()

	Log *zap.Logger
}

// Controller owns the State and applies messages to it.
type Controller struct {
	ctx    context.Context
	remote Remote
	opts   Options
	log    *zap.Logger
	state  State
	inbox  chan Msg
}

// New creates a Controller. ctx bounds the lifetime of its network calls.
func New(ctx context.Context, remote Remote, opts Options) *Controller {
	if opts.FetchLimit <= 0 {
		opts.FetchLimit = 100
	}
	if opts.ErrorTTL <= 0 {
		opts.ErrorTTL = 3 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Random == nil {
		opts.Random = rand.Float64
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		ctx:    ctx,
		remote: remote,
		opts:   opts,
		log:    log,
		state:  State{Store: NewStore()},
		inbox:  make(chan Msg, 16),
	}
}

// State exposes the current state for reading.
func (c *Controller) State() *State { return &c.state }

// View renders the current state.
func (c *Controller) View() View { return Render(&c.state) }

// Inbox delivers results of background work. Each received message must be
// passed back to Update on the UI goroutine.
func (c *Controller) Inbox() <-chan Msg { return c.inbox }

// Drain applies every message currently queued in the inbox and reports how
// many there were. It never blocks.
func (c *Controller) Drain() int {
	n := 0
	for {
		select {
		case msg := <-c.inbox:
			c.Update(msg)
			n++
		default:
			return n
		}
	}
}

// Update is the single entry point for state changes.
func (c *Controller) Update(msg Msg) {
	st := &c.state
	switch m := msg.(type) {
	case Refresh:
		c.fetchAll()

	case EditDraft:
		st.Draft = m.Text

	case AddTask:
		c.createOne(st.Draft)

	case SetSearch:
		st.Filter.Search = m.Query
		c.applyFilters()

	case SetDateBound:
		switch m.Bound {
		case BoundFrom:
			st.Filter.From = ParseDate(m.Value)
		case BoundTo:
			st.Filter.To = ParseDate(m.Value)
		}
		c.applyFilters()

	case SetPage:
		st.Store.SetPage(m.N)

	case tasksFetched:
		st.Busy = false
		now := c.opts.Now()
		tasks := make([]Task, 0, len(m.tasks))
		for _, t := range m.tasks {
			tasks = append(tasks, fromWire(t, randomCreatedAt(now, c.opts.Random())))
		}
		st.Store.ReplaceAll(tasks)
		c.applyFilters()
		c.log.Info("todos fetched", zap.Int("count", len(tasks)))

	case fetchFailed:
		st.Busy = false
		c.log.Error("fetch todos", zap.Error(m.err))
		c.showError(FetchFailedMessage)

	case taskCreated:
		st.Busy = false
		t := fromWire(m.task, c.opts.Now())
		st.Store.Prepend(t)
		c.applyFilters()
		st.Draft = ""
		c.log.Info("todo added", zap.Int("id", t.ID))

	case createFailed:
		st.Busy = false
		c.log.Error("add todo", zap.Error(m.err))
		c.showError(CreateFailedMessage)

	case errorExpired:
		// a newer error restarted the window
		if m.seq == st.errSeq {
			st.Error = ""
		}
	}
}

func (c *Controller) applyFilters() {
	c.state.Store.setVisible(c.state.Filter.Apply(c.state.Store.All()))
	c.state.Store.SetPage(1)
}

func (c *Controller) fetchAll() {
	c.state.Busy = true
	limit := c.opts.FetchLimit
	go func() {
		tasks, err := c.remote.List(c.ctx, limit)
		if err != nil {
			c.send(fetchFailed{err: err})
			return
		}
		c.send(tasksFetched{tasks: tasks})
	}()
}

func (c *Controller) createOne(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	c.state.Busy = true
	d := task.Draft{Todo: text, Completed: false, UserID: OwnerID}
	go func() {
		created, err := c.remote.Create(c.ctx, d)
		if err != nil {
			c.send(createFailed{err: err})
			return
		}
		c.send(taskCreated{task: created})
	}()
}

func (c *Controller) showError(msg string) {
	c.state.Error = msg
	c.state.errSeq++
	seq := c.state.errSeq
	c.opts.AfterFunc(c.opts.ErrorTTL, func() {
		c.send(errorExpired{seq: seq})
	})
}

func (c *Controller) send(msg Msg) {
	select {
	case c.inbox <- msg:
	case <-c.ctx.Done():
		return
	}
	if c.opts.Notify != nil {
		c.opts.Notify()
	}
}
