package queue

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"realestate/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// Handler is called once for every inquiry taken off the queue
type Handler func(*models.ContactInquiry) error

// InquiryQueue is a bounded in-memory queue that fans newly created
// inquiries out to subscribed handlers.
type InquiryQueue struct {
	items    chan *models.ContactInquiry
	done     chan struct{}
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	wg       sync.WaitGroup
	logger   *logrus.Logger
	handlers []Handler
}

// NewInquiryQueue creates a new inquiry queue with the specified buffer size
func NewInquiryQueue(bufferSize int, logger *logrus.Logger) *InquiryQueue {
	if logger == nil {
		logger = logrus.New()
	}
	return &InquiryQueue{
		items:    make(chan *models.ContactInquiry, bufferSize),
		done:     make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]Handler, 0),
	}
}

// Push adds an inquiry to the queue without blocking
func (q *InquiryQueue) Push(inquiry *models.ContactInquiry) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- inquiry:
		q.logger.WithField("inquiry_id", inquiry.ID).Debug("Pushed inquiry to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each inquiry
func (q *InquiryQueue) Subscribe(handler Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue
func (q *InquiryQueue) Start() {
	q.wg.Add(1)
	go q.process()
}

func (q *InquiryQueue) process() {
	defer q.wg.Done()
	for {
		select {
		case <-q.done:
			return
		case inquiry := <-q.items:
			q.dispatch(inquiry)
		}
	}
}

func (q *InquiryQueue) dispatch(inquiry *models.ContactInquiry) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(inquiry); err != nil {
			q.logger.WithError(err).WithField("inquiry_id", inquiry.ID).Error("Handler failed to process inquiry")
		}
	}
}

// Close stops the processing loop and rejects further pushes. Inquiries
// still buffered are discarded.
func (q *InquiryQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.done)
	q.mu.Unlock()

	q.wg.Wait()
	return nil
}

// Len returns the current number of buffered inquiries
func (q *InquiryQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed
func (q *InquiryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

// LogNotifier returns a handler that records each inquiry on the logger.
func LogNotifier(logger *logrus.Logger) Handler {
	return func(inquiry *models.ContactInquiry) error {
		logger.WithFields(logrus.Fields{
			"inquiry_id":  inquiry.ID,
			"property_id": inquiry.PropertyID,
			"email":       inquiry.Email,
		}).Info("New inquiry received")
		return nil
	}
}
