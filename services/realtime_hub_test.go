package services

import (
	"context"
	"testing"

	"fitnessmap/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRealtimeHub_PublishReachesOnlyThatUser(t *testing.T) {
	hub := NewRealtimeHub(nil)

	var got1, got2 []Event
	hub.Subscribe(1, func(ev Event) { got1 = append(got1, ev) })
	hub.Subscribe(2, func(ev Event) { got2 = append(got2, ev) })

	hub.Publish(context.Background(), Event{Kind: EventProfileUpdated, UserID: 1, Profile: &models.FitnessProfile{BMI: 22.5}})

	assert.Len(t, got1, 1)
	assert.Empty(t, got2)
	assert.Equal(t, 22.5, got1[0].Profile.BMI)
}

func TestRealtimeHub_Unsubscribe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	hub := NewRealtimeHub(m)

	calls := 0
	unsubscribe := hub.Subscribe(7, func(Event) { calls++ })
	assert.Equal(t, 1, hub.Subscribers(7))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Subscribers))

	unsubscribe()
	unsubscribe()
	hub.Publish(context.Background(), Event{Kind: EventAlertCreated, UserID: 7})

	assert.Zero(t, calls)
	assert.Zero(t, hub.Subscribers(7))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Subscribers))
}

func TestRealtimeHub_CallbackMayUnsubscribe(t *testing.T) {
	hub := NewRealtimeHub(nil)

	var unsubscribe func()
	calls := 0
	unsubscribe = hub.Subscribe(3, func(Event) {
		calls++
		unsubscribe()
	})

	hub.Publish(context.Background(), Event{UserID: 3})
	hub.Publish(context.Background(), Event{UserID: 3})

	assert.Equal(t, 1, calls)
}
