package systems

import (
	"testing"

	"github.com/pixeldrift/boxhopper/components"
	cfg "github.com/pixeldrift/boxhopper/config"
	"github.com/pixeldrift/boxhopper/systems/factory"
)

func TestPickupCollectsOnceAndAppendsAbility(t *testing.T) {
	e := newTestECS(testLevel())
	collectibleEntry := factory.CreateCollectible(e, 100, 100, 20, 20, cfg.AbilitySpeed)
	factory.CreatePlayer(e, 95, 90)
	_, _, player := playerState(e)

	UpdatePickups(e)

	collectible := components.Collectible.Get(collectibleEntry)
	if !collectible.Collected {
		t.Error("Expected collectible collected after overlap")
	}
	if len(player.Abilities) != 1 || player.Abilities[0] != cfg.AbilitySpeed {
		t.Errorf("Expected abilities [%q], got %v", cfg.AbilitySpeed, player.Abilities)
	}

	// Idempotence: the same overlap must not mutate anything again.
	UpdatePickups(e)

	if len(player.Abilities) != 1 {
		t.Errorf("Expected abilities unchanged on second pass, got %v", player.Abilities)
	}
	if !collectible.Collected {
		t.Error("Expected collectible to stay collected")
	}
}

func TestNoPickupWithoutOverlap(t *testing.T) {
	e := newTestECS(testLevel())
	collectibleEntry := factory.CreateCollectible(e, 500, 100, 20, 20, cfg.AbilityDash)
	factory.CreatePlayer(e, 100, 100)
	_, _, player := playerState(e)

	UpdatePickups(e)

	if components.Collectible.Get(collectibleEntry).Collected {
		t.Error("Expected distant collectible untouched")
	}
	if len(player.Abilities) != 0 {
		t.Errorf("Expected no abilities, got %v", player.Abilities)
	}
}

func TestSimultaneousPickupsAppendInListOrder(t *testing.T) {
	e := newTestECS(testLevel())
	factory.CreateCollectible(e, 100, 100, 20, 20, cfg.AbilityDoubleJump)
	factory.CreateCollectible(e, 110, 100, 20, 20, cfg.AbilityDash)
	factory.CreatePlayer(e, 95, 90)
	_, _, player := playerState(e)

	UpdatePickups(e)

	if len(player.Abilities) != 2 {
		t.Fatalf("Expected two abilities, got %v", player.Abilities)
	}
	if player.Abilities[0] != cfg.AbilityDoubleJump || player.Abilities[1] != cfg.AbilityDash {
		t.Errorf("Expected creation-order append, got %v", player.Abilities)
	}
}

func TestDuplicateKindsAreKept(t *testing.T) {
	e := newTestECS(testLevel())
	factory.CreateCollectible(e, 100, 100, 20, 20, cfg.AbilitySpeed)
	factory.CreateCollectible(e, 110, 100, 20, 20, cfg.AbilitySpeed)
	factory.CreatePlayer(e, 95, 90)
	_, _, player := playerState(e)

	UpdatePickups(e)

	if len(player.Abilities) != 2 {
		t.Errorf("Expected duplicate kinds kept, got %v", player.Abilities)
	}
}
