package services

import (
	"context"
	"encoding/json"
	"testing"

	"fitnessmap/calculator"
	"fitnessmap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBroker_RelayDeliversLocally(t *testing.T) {
	hub := NewRealtimeHub(nil)
	b := NewRedisBroker(nil, hub, testLogger())

	var got []Event
	unsubscribe := b.Subscribe(4, func(ev Event) { got = append(got, ev) })
	defer unsubscribe()

	payload, err := json.Marshal(Event{
		Kind:    EventProfileUpdated,
		UserID:  4,
		Profile: &models.FitnessProfile{UserID: 4, BMI: 19.2, BMIClassification: calculator.Balanced},
	})
	require.NoError(t, err)

	b.relay(context.Background(), string(payload))
	b.relay(context.Background(), "{not json")

	require.Len(t, got, 1)
	assert.Equal(t, calculator.Balanced, got[0].Profile.BMIClassification)
}
