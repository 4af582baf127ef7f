package systems

import (
	"log"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

// UpdateRound ends the round once a downed combatant has stayed down for the
// KO grace period. Every downed combatant loses a life; the match ends when
// anyone runs out, otherwise both are sent home for the next round.
func UpdateRound(w donburi.World) {
	roundEntry, ok := components.Round.First(w)
	if !ok {
		return
	}
	round := components.Round.Get(roundEntry)
	if !round.Active {
		return
	}

	fighters := Combatants(w)
	var downed []*donburi.Entry
	graceOver := false
	for _, e := range fighters {
		state := components.State.Get(e)
		if state.Current != cfg.Dead {
			continue
		}
		downed = append(downed, e)
		if state.Timer >= cfg.Round.KOGrace {
			graceOver = true
		}
	}

	if len(downed) == 0 {
		round.State = cfg.RoundStateFighting
		return
	}
	round.State = cfg.RoundStateKO
	if !graceOver {
		return
	}

	for _, e := range downed {
		lives := components.Lives.Get(e)
		if lives.Lives > 0 {
			lives.Lives--
		}
	}

	var out []cfg.PlayerSlot
	for _, e := range fighters {
		if components.Lives.Get(e).Lives <= 0 {
			out = append(out, components.Combatant.Get(e).Slot)
		}
	}

	if len(out) > 0 {
		round.Active = false
		round.State = cfg.RoundStateMatchOver
		round.Winner = components.Draw
		if len(out) == 1 {
			round.Winner = out[0].Opponent()
		}
		log.Printf("[round] match over after round %d, winner %s", round.Number, winnerName(round.Winner))
		PushEvent(w, components.Event{Kind: components.EventMatchOver, Slot: round.Winner})
		return
	}

	round.Number++
	round.State = cfg.RoundStateFighting
	for _, e := range fighters {
		ResetCombatant(e)
	}
	log.Printf("[round] round %d", round.Number)
	PushEvent(w, components.Event{Kind: components.EventRoundReset})
}

func winnerName(slot cfg.PlayerSlot) string {
	if slot == components.Draw {
		return "draw"
	}
	return slot.String()
}
