package queue

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"realestate/server/internal/models"
)

func TestNewInquiryQueue(t *testing.T) {
	logger := logrus.New()
	q := NewInquiryQueue(10, logger)
	assert.NotNil(t, q)
	assert.Equal(t, 10, q.maxSize)
	assert.False(t, q.IsClosed())
}

func TestInquiryQueue_Push(t *testing.T) {
	logger := logrus.New()
	q := NewInquiryQueue(2, logger)

	// Test successful push
	err := q.Push(&models.ContactInquiry{ID: 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, q.Len())

	// Test queue full
	_ = q.Push(&models.ContactInquiry{ID: 2})
	err = q.Push(&models.ContactInquiry{ID: 3})
	assert.Equal(t, ErrQueueFull, err)

	// Test closed queue
	q.Close()
	err = q.Push(&models.ContactInquiry{ID: 4})
	assert.Equal(t, ErrQueueClosed, err)
}

func TestInquiryQueue_Subscribe(t *testing.T) {
	logger := logrus.New()
	q := NewInquiryQueue(10, logger)
	defer q.Close()

	var processed []int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(2)

	q.Subscribe(func(inquiry *models.ContactInquiry) error {
		mu.Lock()
		processed = append(processed, inquiry.ID)
		mu.Unlock()
		wg.Done()
		return nil
	})

	q.Start()

	assert.NoError(t, q.Push(&models.ContactInquiry{ID: 1}))
	assert.NoError(t, q.Push(&models.ContactInquiry{ID: 2}))

	wg.Wait()

	mu.Lock()
	assert.Equal(t, []int64{1, 2}, processed)
	mu.Unlock()
}

func TestInquiryQueue_Close(t *testing.T) {
	logger := logrus.New()
	q := NewInquiryQueue(10, logger)
	q.Start()

	// Test first close
	err := q.Close()
	assert.NoError(t, err)
	assert.True(t, q.IsClosed())

	// Test second close (should be no-op)
	err = q.Close()
	assert.NoError(t, err)
}

func TestInquiryQueue_FanOut(t *testing.T) {
	logger, hook := test.NewNullLogger()
	q := NewInquiryQueue(10, logger)
	defer q.Close()

	var wg sync.WaitGroup
	calls := 0
	var mu sync.Mutex

	// The failing handler must not stop the others from running
	for i := 0; i < 3; i++ {
		wg.Add(1)
		fail := i == 0
		q.Subscribe(func(inquiry *models.ContactInquiry) error {
			defer wg.Done()
			mu.Lock()
			calls++
			mu.Unlock()
			if fail {
				return errors.New("notifier down")
			}
			return nil
		})
	}

	q.Start()
	assert.NoError(t, q.Push(&models.ContactInquiry{ID: 7}))
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 3, calls)
	mu.Unlock()

	assert.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.ErrorLevel {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := LogNotifier(logger)

	err := handler(&models.ContactInquiry{ID: 3, PropertyID: 9, Email: "jane@example.com"})
	assert.NoError(t, err)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "New inquiry received", entry.Message)
		assert.Equal(t, int64(3), entry.Data["inquiry_id"])
		assert.Equal(t, int64(9), entry.Data["property_id"])
	}
}
