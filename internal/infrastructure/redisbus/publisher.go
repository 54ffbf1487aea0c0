package redisbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/pkg/logger"
)

var _ events.Bus = (*Publisher)(nil)

// Publisher decora un events.Bus reenviando cada publicación a un canal
// Redis pub/sub (`pyme.events.<topic>`), para que otras instancias de la
// aplicación reaccionen a los cambios de datos. Las suscripciones locales
// siguen pasando por el bus interno.
//
// El reenvío es best-effort: un fallo de Redis se registra y no afecta a la
// entrega local ni al caller.
type Publisher struct {
	inner  events.Bus
	client *redis.Client
	log    *logger.Logger
}

// Options conexión al Redis de eventos.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// New conecta al Redis y construye el decorador. Falla si el ping inicial falla.
func New(inner events.Bus, opts Options, log *logger.Logger) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &Publisher{inner: inner, client: client, log: log}, nil
}

type wireEvent struct {
	Topic   string    `json:"topic"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Publish entrega localmente y reenvía al canal Redis del tópico.
func (p *Publisher) Publish(ctx context.Context, topic events.Topic, payload any) {
	p.inner.Publish(ctx, topic, payload)

	data, err := json.Marshal(wireEvent{Topic: string(topic), Payload: payload, At: time.Now()})
	if err != nil {
		p.log.Error().Err(err).Str("topic", string(topic)).Msg("serializar evento para redis")
		return
	}
	if err := p.client.Publish(ctx, "pyme.events."+string(topic), data).Err(); err != nil {
		p.log.Error().Err(err).Str("topic", string(topic)).Msg("publicar evento en redis")
	}
}

// Subscribe delega en el bus interno.
func (p *Publisher) Subscribe(topic events.Topic, h events.Handler) func() {
	return p.inner.Subscribe(topic, h)
}

// Close cierra la conexión a Redis.
func (p *Publisher) Close() error {
	return p.client.Close()
}
