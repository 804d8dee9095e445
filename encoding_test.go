package pga3d

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMotorIdentityJSONRoundTrip(t *testing.T) {
	data, err := json.MarshalIndent(Identity(), "", "  ")
	require.NoError(t, err)

	var got Motor
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, Identity(), got)
}

func TestJSONFieldOrder(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"point", NewPoint(1, 2, 3, 4), `{"x":1,"y":2,"z":3,"w":4}`},
		{"plane", NewPlane(1, 2, 3, 4), `{"x":1,"y":2,"z":3,"w":4}`},
		{"line", NewLine(1, 2, 3, 4, 5, 6), `{"vx":1,"vy":2,"vz":3,"mx":4,"my":5,"mz":6}`},
		{"motor", NewMotor(1, 2, 3, 4, 5, 6, 7, 8), `{"vx":1,"vy":2,"vz":3,"vw":4,"mx":5,"my":6,"mz":7,"mw":8}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	m := EulerPosRot(1, 2, 3, 0.3, 0.4, 0.5)
	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vw:")

	var got Motor
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.True(t, got.IsClose(m), "got %+v, want %+v", got, m)

	var id Motor
	data, err = yaml.Marshal(Identity())
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &id))
	assert.Equal(t, Identity(), id)
}

func TestYAMLPointDecode(t *testing.T) {
	var p Point
	require.NoError(t, yaml.Unmarshal([]byte("{x: 1, y: -2, z: 0.5, w: 1}"), &p))
	assert.Equal(t, Position(1, -2, 0.5), p)
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Run("motor identity", func(t *testing.T) {
		data, err := Identity().MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, data, 8*floatSize)

		var got Motor
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, Identity(), got)
	})

	t.Run("motor", func(t *testing.T) {
		m := EulerPosRot(-2, 0.5, 1, 1.1, -0.7, 0.2)
		data, err := m.MarshalBinary()
		require.NoError(t, err)

		var got Motor
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, m, got)
	})

	t.Run("point", func(t *testing.T) {
		p := NewPoint(1.5, -2, 3.25, 1)
		data, err := p.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, data, 4*floatSize)

		var got Point
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, p, got)
	})

	t.Run("line", func(t *testing.T) {
		l := Position(5, 6, 7).Join(Position(6, 7, 8))
		data, err := l.MarshalBinary()
		require.NoError(t, err)

		var got Line
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, l, got)
	})

	t.Run("plane", func(t *testing.T) {
		pl := NewPlane(0, 1, 0, -3)
		data, err := pl.MarshalBinary()
		require.NoError(t, err)

		var got Plane
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, pl, got)
	})
}

func TestBinaryFieldOrder(t *testing.T) {
	data, err := NewPoint(1, 2, 3, 4).MarshalBinary()
	require.NoError(t, err)
	for i, want := range []Float{1, 2, 3, 4} {
		assert.Equal(t, want, getFloat(data[i*floatSize:]), "component %d", i)
	}
}

func TestUnmarshalBinaryInvalidLength(t *testing.T) {
	var m Motor
	err := m.UnmarshalBinary(make([]byte, 3))
	require.ErrorIs(t, err, ErrInvalidLength)

	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, "Motor", lenErr.Type)
	assert.Equal(t, 3, lenErr.Got)
	assert.Equal(t, 8*floatSize, lenErr.Expected)
	assert.Equal(t, Motor{}, m, "failed decode must not modify the target")
}
