package mqttbus

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// IPublisher interface defines the methods to publish a message
type IPublisher interface {
	PublishMessage(message interface{}) error
	PublishMessageQos(qos byte, retained bool, message interface{}) error
	PublishToQos(topic string, qos byte, retained bool, message interface{}) error
	Close()
}

// Publisher holds the client and default topic for publishing messages
type Publisher struct {
	client mqtt.Client
	topic  string
}

// NewPublisher creates a new Publisher instance using the shared MQTT client and topic
func NewPublisher(client mqtt.Client, topic string) *Publisher {
	return &Publisher{
		client: client,
		topic:  topic,
	}
}

// PublishMessage publishes a message to the default topic with QoS 0 (At most once)
func (p *Publisher) PublishMessage(message interface{}) error {
	return p.PublishToQos(p.topic, 0, false, message)
}

// PublishMessageQos publishes a message to the default topic with the given QoS
func (p *Publisher) PublishMessageQos(qos byte, retained bool, message interface{}) error {
	return p.PublishToQos(p.topic, qos, retained, message)
}

// PublishToQos publishes a message to an explicit topic, for publishers that
// fan out over per-gauge topics
func (p *Publisher) PublishToQos(topic string, qos byte, retained bool, message interface{}) error {
	messageStr, ok := message.(string)
	if !ok {
		return fmt.Errorf("invalid message format, expected string")
	}

	token := p.client.Publish(topic, qos, retained, messageStr)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to publish message: %w", token.Error())
	}

	log.Printf("Message published to topic '%s'", topic)
	return nil
}

// Close gracefully closes the MQTT connection for the publisher
func (p *Publisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
		log.Println("MQTT client disconnected")
	}
}
