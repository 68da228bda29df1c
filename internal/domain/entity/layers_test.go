package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanCollide(t *testing.T) {
	tests := []struct {
		a, b Layer
		want bool
	}{
		{LayerPlayer, LayerEnemyBullet, true},
		{LayerPlayer, LayerEnemy, true},
		{LayerEnemy, LayerPlayerBullet, true},
		{LayerPlayer, LayerPlayerBullet, false},
		{LayerEnemy, LayerEnemyBullet, false},
		{LayerPlayerBullet, LayerEnemyBullet, false},
		{LayerEnemy, LayerEnemy, false},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanCollide(tt.a, tt.b))
			assert.Equal(t, tt.want, CanCollide(tt.b, tt.a), "symmetric")
		})
	}
}

func TestLayer_Has(t *testing.T) {
	mask := LayerPlayer.Mask()

	assert.True(t, mask.Has(LayerEnemyBullet))
	assert.False(t, mask.Has(LayerPlayerBullet))
	assert.False(t, mask.Has(0))
	assert.Equal(t, "Mixed", mask.String())
}

func TestDespawnReason_String(t *testing.T) {
	assert.Equal(t, "death", DespawnDeath.String())
	assert.Equal(t, "out_of_bounds", DespawnOutOfBounds.String())
	assert.Equal(t, "expired", DespawnExpired.String())
	assert.Equal(t, "hit", DespawnHit.String())
	assert.Equal(t, "unknown", DespawnReason(99).String())
}
