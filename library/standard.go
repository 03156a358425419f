// Package library: the built-in ability-node library.
package library

import "github.com/powergraph/powergraph/typeset"

// Types used by the standard ability library. GameEffect is the designated
// sink type: a search terminates when only game effects remain live.
const (
	TypeFloat         typeset.Type = "float"
	TypeInputKey      typeset.Type = "InputKey"
	TypePosition      typeset.Type = "Position"
	TypeSimplePath    typeset.Type = "SimplePath"
	TypeDirection     typeset.Type = "Direction"
	TypeEntityID      typeset.Type = "EntityId"
	TypeEnemyEntityID typeset.Type = "EnemyEntityId"
	TypeDamage        typeset.Type = "Damage"
	TypeArea          typeset.Type = "Area"
	TypeBool          typeset.Type = "Bool"
	TypeGameEffect    typeset.Type = "GameEffect"
)

// Standard returns the built-in ability-node declarations: universals
// (available from nothing), player-input nodes, converters, and terminal
// game effects.
//
// DelayArea and DamageLifesteal feed their own input type back out; without
// the search budget and depth guards they admit unbounded chains, so they
// are only safe to register because the search prunes on both.
func Standard() []Declaration {
	return []Declaration{
		// Universals — things an ability always has access to.
		{Name: "ConstantFloat", Outputs: outs(TypeFloat), Templates: tmpl("$CONSTANT")},
		{Name: "OwningEntity", Outputs: outs(TypeEntityID), Templates: tmpl("the user's character")},
		{Name: "InKey", Outputs: outs(TypeInputKey), Templates: tmpl("the ability's key")},

		// Inputs — how the player aims or triggers the ability.
		{Name: "InputClick", Inputs: ins(TypeInputKey), Outputs: outs(TypePosition),
			Templates: tmpl("where the user clicked")},
		{Name: "InputPerpendicularLine", Inputs: ins(TypeInputKey), Outputs: outs(TypeSimplePath),
			Templates: tmpl("a line perpendicular to the player")},
		{Name: "InputClickDragReleaseDirection", Inputs: ins(TypeInputKey),
			Outputs:   outs(TypePosition, TypeDirection),
			Templates: tmpl("where the user clicked", "where the mouse moved before releasing")},
		{Name: "InputClickCharge", Inputs: ins(TypeInputKey),
			Outputs:   outs(TypePosition, TypeFloat),
			Templates: tmpl("where the user clicked and held", "proportional to how long the user held the mouse for")},
		{Name: "InputPlaceMines", Inputs: ins(TypeInputKey),
			Outputs:   outs(TypePosition, TypeFloat),
			Templates: tmpl("where the mines were placed", "proportional to how long the mines charged before detonation")},
		{Name: "InputUnitTargetEnemy", Inputs: ins(TypeInputKey), Outputs: outs(TypeEnemyEntityID),
			Templates: tmpl("the clicked enemy")},
		{Name: "InputToggle", Inputs: ins(TypeInputKey), Outputs: outs(TypeBool),
			Templates: tmpl("a toggle is held")},

		// Converters — reshape values between input and payoff.
		{Name: "PositionToArea", Inputs: ins(TypePosition, TypeFloat), Outputs: outs(TypeArea),
			Templates: tmpl("a circle centered on {0} with radius {1}")},
		{Name: "TimeBoolToRandomDirection", Inputs: ins(TypeBool), Outputs: outs(TypeDirection),
			Templates: tmpl("random directions when {0}")},
		{Name: "PositionFromEntity", Inputs: ins(TypeEntityID), Outputs: outs(TypePosition),
			Templates: tmpl("the Position of {0}")},
		{Name: "EntitiesInArea", Inputs: ins(TypeArea), Outputs: outs(TypeEnemyEntityID),
			Templates: tmpl("entities in {0}")},
		{Name: "DirectionToProjectile", Inputs: ins(TypeDirection), Outputs: outs(TypeEnemyEntityID),
			Templates: tmpl("enemies hit by projectiles emitted towards {0}")},
		{Name: "CloudFollowingPath", Inputs: ins(TypeSimplePath), Outputs: outs(TypeArea),
			Templates: tmpl("a cloud that moves along {0}")},
		{Name: "PathToArea", Inputs: ins(TypeSimplePath), Outputs: outs(TypeArea),
			Templates: tmpl("a static cloud covering {0}")},
		{Name: "DelayArea", Inputs: ins(TypeArea), Outputs: outs(TypeArea),
			Templates: tmpl("delayed {0}")},
		{Name: "DamageLifesteal", Inputs: ins(TypeDamage), Outputs: outs(TypeDamage),
			Templates: tmpl("{0} with lifesteal")},

		// Game effects — the abilities' payoffs; each terminates a chain.
		{Name: "AddDamageOnEntity", Inputs: ins(TypeEnemyEntityID, TypeFloat), Outputs: outs(TypeDamage),
			Templates: tmpl("Deal damage scaling with {1} to {0}")},
		{Name: "ConditionOnEntity", Inputs: ins(TypeEnemyEntityID, TypeFloat), Outputs: outs(TypeGameEffect),
			Templates: tmpl("Inflict a condition on {0} with intensity {1}")},
		{Name: "TeleportPlayer", Inputs: ins(TypeEntityID, TypePosition), Outputs: outs(TypeGameEffect),
			Templates: tmpl("Teleport {0} to {1}")},
		{Name: "Wall", Inputs: ins(TypeSimplePath), Outputs: outs(TypeGameEffect),
			Templates: tmpl("A wall following {0}")},
		{Name: "TerminateDamage", Inputs: ins(TypeDamage), Outputs: outs(TypeGameEffect),
			Templates: tmpl("{0}")},
	}
}

// StandardRegistry builds the registry for Standard(). It panics on a
// validation error: the built-in library failing its own self-check is a
// programming defect, not a runtime condition.
func StandardRegistry() *Registry {
	r, err := NewRegistry(Standard()...)
	if err != nil {
		panic(err)
	}

	return r
}

func ins(ts ...typeset.Type) []typeset.Type  { return ts }
func outs(ts ...typeset.Type) []typeset.Type { return ts }
func tmpl(ss ...string) []string             { return ss }
