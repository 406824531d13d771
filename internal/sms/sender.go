package sms

import "log"

// Sender delivers a verification code to a phone number.
type Sender interface {
	Send(phone, code string) error
}

// LogSender writes the code to the server log instead of calling a real
// SMS gateway.
type LogSender struct{}

func (LogSender) Send(phone, code string) error {
	log.Printf("向手机号 %s 发送验证码: %s", phone, code)
	return nil
}

type Message struct {
	Phone string
	Code  string
}

// Dispatcher delivers codes asynchronously so a slow gateway never holds
// up the request.
type Dispatcher struct {
	sender Sender
	queue  chan Message
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(msg.Phone, msg.Code); err != nil {
			log.Println("sms error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
		// enqueued
	default:
		// queue full → drop the send, never break the API
		log.Println("sms queue full, dropping message")
	}
}
