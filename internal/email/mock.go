package email

import "sync"

// Message is one recorded delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

// MockProvider records deliveries instead of sending them. Used by tests
// and by deployments without an SMTP relay. FailNext makes the next Send
// return the given error once.
type MockProvider struct {
	mu       sync.Mutex
	Sent     []Message
	failNext error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(to, subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failNext != nil {
		err := p.failNext
		p.failNext = nil
		return err
	}

	p.Sent = append(p.Sent, Message{To: to, Subject: subject, Body: body})
	return nil
}

// FailNext arranges for the next Send to fail with err.
func (p *MockProvider) FailNext(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failNext = err
}

// LastTo returns the recipient of the most recent delivery, or "".
func (p *MockProvider) LastTo() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Sent) == 0 {
		return ""
	}
	return p.Sent[len(p.Sent)-1].To
}

// LastBody returns the body of the most recent delivery, or "".
func (p *MockProvider) LastBody() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Sent) == 0 {
		return ""
	}
	return p.Sent[len(p.Sent)-1].Body
}
