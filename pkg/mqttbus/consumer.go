package mqttbus

import (
	"context"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// IConsumer interface defines the ConsumeMessage method with dependencies T
type IConsumer[T any] interface {
	ConsumeMessage(ctx context.Context)
	SetHandler(handler func(topic string, message mqtt.Message) error)
}

// Consumer subscribes to a single topic filter on the shared MQTT client
type Consumer struct {
	client  mqtt.Client
	handler func(topic string, message mqtt.Message) error
	topic   string
}

// NewConsumer creates a new Consumer instance using the shared MQTT client and topic
func NewConsumer(client mqtt.Client, topic string, handler func(topic string, message mqtt.Message) error) *Consumer {
	return &Consumer{
		client:  client,
		topic:   topic,
		handler: handler,
	}
}

func (c *Consumer) SetHandler(handler func(topic string, message mqtt.Message) error) {
	c.handler = handler
}

// qosFor: i conteggi dello standard block arrivano una volta per turno e non
// vanno persi, le letture correnti possono essere ritrasmesse.
func qosFor(topic string) byte {
	t := strings.TrimSpace(topic)
	if strings.HasPrefix(t, "gauge/standard") {
		return 1
	}
	return 0
}

// ConsumeMessage subscribes to the topic and processes messages using the handler.
// It blocks until the context is cancelled.
func (c *Consumer) ConsumeMessage(ctx context.Context) {
	token := c.client.Subscribe(
		c.topic,
		qosFor(c.topic),
		func(client mqtt.Client, message mqtt.Message) {
			if c.handler == nil {
				log.Printf("No handler set for topic %s", c.topic)
				return
			}
			if err := c.handler(message.Topic(), message); err != nil {
				log.Printf("Error handling message: %v", err)
			}
		},
	)

	if token.Wait() && token.Error() != nil {
		log.Printf("Error subscribing to topic %s: %v", c.topic, token.Error())
		return
	}

	log.Printf("Successfully subscribed to topic %s", c.topic)

	<-ctx.Done()

	// Unsubscribe when exiting to clean up
	unsubToken := c.client.Unsubscribe(c.topic)
	unsubToken.Wait()
}

// MultiConsumer -------------------------- [] ---------------------- [] ---------------------
type MultiConsumer struct {
	client  mqtt.Client
	topics  []string
	handler func(topic string, message mqtt.Message) error
}

func NewMultiConsumer(client mqtt.Client, topics []string, handler func(topic string, message mqtt.Message) error) *MultiConsumer {
	return &MultiConsumer{
		client:  client,
		topics:  topics,
		handler: handler,
	}
}

func (m *MultiConsumer) SetHandler(handler func(topic string, message mqtt.Message) error) {
	m.handler = handler
}

func (m *MultiConsumer) ConsumeMessage(ctx context.Context) {
	for _, topic := range m.topics {
		topic := topic // shadow for closure safety
		token := m.client.Subscribe(
			topic,
			qosFor(topic),
			func(client mqtt.Client, msg mqtt.Message) {
				if m.handler == nil {
					log.Printf("No handler set for topic %s", topic)
					return
				}
				if err := m.handler(msg.Topic(), msg); err != nil {
					log.Printf("Error handling message on %s: %v", topic, err)
				}
			},
		)
		token.Wait()
		if token.Error() != nil {
			log.Printf("Error subscribing to topic %s: %v", topic, token.Error())
		} else {
			log.Printf("Successfully subscribed to topic %s", topic)
		}
	}

	<-ctx.Done()

	// On context cancel: unsubscribe from all
	for _, topic := range m.topics {
		m.client.Unsubscribe(topic)
	}
}
