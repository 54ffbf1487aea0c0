package events_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pyme-api/internal/application/events"
)

// Cada suscriptor del tópico recibe el payload publicado.
func TestMemoryBus_PublicaASuscriptores(t *testing.T) {
	bus := events.NewMemoryBus()

	var recibidos []any
	bus.Subscribe(events.TopicProductsUpdated, func(ev events.Event) {
		recibidos = append(recibidos, ev.Payload)
	})
	bus.Subscribe(events.TopicProductsUpdated, func(ev events.Event) {
		recibidos = append(recibidos, ev.Payload)
	})

	bus.Publish(context.Background(), events.TopicProductsUpdated, "hola")

	require.Len(t, recibidos, 2, "ambos suscriptores deben recibir el evento")
	assert.Equal(t, "hola", recibidos[0])
	assert.Equal(t, "hola", recibidos[1])
}

// Un evento de un tópico no llega a suscriptores de otro.
func TestMemoryBus_AislamientoPorTopico(t *testing.T) {
	bus := events.NewMemoryBus()

	llegadas := 0
	bus.Subscribe(events.TopicClientsChanged, func(events.Event) { llegadas++ })

	bus.Publish(context.Background(), events.TopicSuppliersUpdated, nil)
	bus.Publish(context.Background(), events.TopicProductStockChanged, nil)

	assert.Zero(t, llegadas, "el suscriptor de clientes no debe recibir otros tópicos")
}

// Tras cancelar la suscripción no llegan más eventos.
func TestMemoryBus_Unsubscribe(t *testing.T) {
	bus := events.NewMemoryBus()

	llegadas := 0
	cancel := bus.Subscribe(events.TopicCompanySettingsChanged, func(events.Event) { llegadas++ })

	bus.Publish(context.Background(), events.TopicCompanySettingsChanged, nil)
	cancel()
	bus.Publish(context.Background(), events.TopicCompanySettingsChanged, nil)

	assert.Equal(t, 1, llegadas, "después de cancelar no deben entregarse eventos")
}

// Publicar sin suscriptores no rompe.
func TestMemoryBus_SinSuscriptores_NoFalla(t *testing.T) {
	bus := events.NewMemoryBus()
	bus.Publish(context.Background(), events.TopicProductsUpdated, map[string]int{"x": 1})
}

// El evento entregado lleva el tópico y una marca de tiempo.
func TestMemoryBus_EventoLlevaTopicoYFecha(t *testing.T) {
	bus := events.NewMemoryBus()

	var got events.Event
	bus.Subscribe(events.TopicProductStockChanged, func(ev events.Event) { got = ev })
	bus.Publish(context.Background(), events.TopicProductStockChanged, 42)

	assert.Equal(t, events.TopicProductStockChanged, got.Topic)
	assert.Equal(t, 42, got.Payload)
	assert.False(t, got.At.IsZero())
}
