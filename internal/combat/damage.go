package combat

import "fmt"

var damageMessages = []struct {
	maxDamage int
	verb3rd   string // "{attacker} {verb} {target}!"
}{
	{0, "misses"},
	{2, "barely scratches"},
	{4, "tickles"},
	{6, "barely hurts"},
	{10, "hits"},
	{14, "hits hard"},
	{19, "pummels"},
	{24, "thrashes"},
	{30, "mauls"},
	{40, "decimates"},
	{50, "devastates"},
	{65, "obliterates"},
	{80, "annihilates"},
}

// DamageVerb returns the 3rd person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, msg := range damageMessages {
		if damage <= msg.maxDamage {
			return msg.verb3rd
		}
	}
	return "does UNSPEAKABLE things to"
}

// AttackLine formats the combat message broadcast to a room after an attack
// resolves.
func AttackLine(attacker, defender Combatant, res Result) string {
	if res.Missed {
		return fmt.Sprintf("%s misses %s!", attacker.CombatName(), defender.CombatName())
	}
	return fmt.Sprintf("%s %s %s!", attacker.CombatName(), DamageVerb(res.Amount), defender.CombatName())
}
