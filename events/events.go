// events.go - Best-effort MQTT event publication
// Order placements and completed payments are announced on an MQTT broker so
// downstream consumers (dashboards, stock monitors) can react. Publishing is
// optional: with no broker configured the publisher is nil and every call is
// a no-op. Event delivery never fails a request.

package events // Declares the package name

import ( // Import required packages
	"encoding/json" // Event payloads travel as JSON
	"time"          // Connect timeout

	mqtt "github.com/eclipse/paho.mqtt.golang" // MQTT client
)

const ( // Topics the backend publishes on
	TopicOrderPlaced      = "toolexpress/orders/placed"
	TopicPaymentCompleted = "toolexpress/payments/completed"
)

type Publisher struct { // Publisher wraps a connected MQTT client
	client mqtt.Client
}

// Connect dials the broker and returns a ready publisher.
func Connect(broker string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("tool-express-backend").
		SetConnectTimeout(5 * time.Second)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Publisher{client: client}, nil
}

// Publish sends one JSON-encoded event. Safe on a nil publisher.
func (p *Publisher) Publish(topic string, event interface{}) error {
	if p == nil {
		return nil // Publishing disabled
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	token := p.client.Publish(topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker. Safe on a nil publisher.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.client.Disconnect(250) // Quiesce for up to 250ms
}
