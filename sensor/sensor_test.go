package sensor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/bthome"
	"github.com/nlowe/bthome/object"
)

func TestStatic(t *testing.T) {
	s := Static{
		{Object: object.Temperature, Value: 25.0},
		{Object: object.Humidity, Value: 50.55},
	}

	got, err := s.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []bthome.Reading(s), got)

	// Callers may append to the result without affecting the source.
	got[0] = bthome.Reading{Object: object.Battery, Value: 1}
	assert.Equal(t, object.Temperature, s[0].Object)
}
