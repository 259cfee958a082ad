package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerOwner_Columns(t *testing.T) {
	id := uuid.New()
	brokerID, officeID := BrokerOwner(id).Columns()
	require.NotNil(t, brokerID)
	assert.Equal(t, id, *brokerID)
	assert.Nil(t, officeID)
}

func TestOfficeOwner_Columns(t *testing.T) {
	id := uuid.New()
	brokerID, officeID := OfficeOwner(id).Columns()
	assert.Nil(t, brokerID)
	require.NotNil(t, officeID)
	assert.Equal(t, id, *officeID)
}

func TestOwnerRef_Kind(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, OwnerBroker, BrokerOwner(id).Kind())
	assert.Equal(t, OwnerOffice, OfficeOwner(id).Kind())
	assert.Equal(t, id, BrokerOwner(id).ID())
}
